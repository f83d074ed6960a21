package vm

// Stack layout convention (shared with maps_intrinsics.go): Object-typed
// arguments live on the object stack in call order, Value-typed arguments
// live on the value stack in call order.
func registerLists() {
	register(ListLen, "ListLen", func(in *Input, out *Result) {
		switch l := in.GetObject(-1).(type) {
		case *ValueList:
			out.ReturnedValue = NewIntValue(int64(l.Len()))
		case *ObjectList:
			out.ReturnedValue = NewIntValue(int64(l.Len()))
		default:
			panic(newFault(InternalTypeConfusion, "ListLen target is not a list."))
		}
	})

	register(ListFirst, "ListFirst", func(in *Input, out *Result) {
		switch l := in.GetObject(-1).(type) {
		case *ValueList:
			if l.Len() == 0 {
				panic(newFault(ListIsEmpty, "The list is empty."))
			}
			out.ReturnedValue = l.Get(0)
		case *ObjectList:
			if l.Len() == 0 {
				panic(newFault(ListIsEmpty, "The list is empty."))
			}
			out.ReturnedObject = l.Get(0)
		default:
			panic(newFault(InternalTypeConfusion, "ListFirst target is not a list."))
		}
	})

	register(ListLast, "ListLast", func(in *Input, out *Result) {
		switch l := in.GetObject(-1).(type) {
		case *ValueList:
			if l.Len() == 0 {
				panic(newFault(ListIsEmpty, "The list is empty."))
			}
			out.ReturnedValue = l.Get(l.Len() - 1)
		case *ObjectList:
			if l.Len() == 0 {
				panic(newFault(ListIsEmpty, "The list is empty."))
			}
			out.ReturnedObject = l.Get(l.Len() - 1)
		default:
			panic(newFault(InternalTypeConfusion, "ListLast target is not a list."))
		}
	})

	register(ListMid, "ListMid", func(in *Input, out *Result) {
		start := intArg(in, -2)
		count := intArg(in, -1)
		switch l := in.GetObject(-1).(type) {
		case *ValueList:
			end := midEnd(start, count, l.Len())
			out.ReturnedObject = NewValueList(l.Slice(start, end)...)
		case *ObjectList:
			end := midEnd(start, count, l.Len())
			out.ReturnedObject = NewObjectList(l.Slice(start, end)...)
		default:
			panic(newFault(InternalTypeConfusion, "ListMid target is not a list."))
		}
	})

	register(ListSkip, "ListSkip", func(in *Input, out *Result) {
		n := intArg(in, -1)
		switch l := in.GetObject(-1).(type) {
		case *ValueList:
			start := skipStart(n, l.Len())
			out.ReturnedObject = NewValueList(l.Slice(start, l.Len())...)
		case *ObjectList:
			start := skipStart(n, l.Len())
			out.ReturnedObject = NewObjectList(l.Slice(start, l.Len())...)
		default:
			panic(newFault(InternalTypeConfusion, "ListSkip target is not a list."))
		}
	})

	register(ListTake, "ListTake", func(in *Input, out *Result) {
		n := intArg(in, -1)
		switch l := in.GetObject(-1).(type) {
		case *ValueList:
			end := skipStart(n, l.Len())
			out.ReturnedObject = NewValueList(l.Slice(0, end)...)
		case *ObjectList:
			end := skipStart(n, l.Len())
			out.ReturnedObject = NewObjectList(l.Slice(0, end)...)
		default:
			panic(newFault(InternalTypeConfusion, "ListTake target is not a list."))
		}
	})

	register(ListFillV, "ListFillV", func(in *Input, out *Result) {
		v := in.GetValue(-2)
		count := intArg(in, -1)
		if count < 0 {
			panic(newFault(InvalidArgument, "Fill count %d is negative.", count))
		}
		items := make([]Value, count)
		for i := range items {
			items[i] = v
		}
		out.ReturnedObject = NewValueList(items...)
	})

	register(ListFillO, "ListFillO", func(in *Input, out *Result) {
		o := in.GetObject(-1)
		count := intArg(in, -1)
		if count < 0 {
			panic(newFault(InvalidArgument, "Fill count %d is negative.", count))
		}
		items := make([]Object, count)
		for i := range items {
			items[i] = o
		}
		out.ReturnedObject = NewObjectList(items...)
	})

	register(ValueListBuilderNew, "ValueListBuilderNew", func(in *Input, out *Result) {
		out.ReturnedObject = NewValueListBuilder()
	})
	register(ValueListBuilderAdd, "ValueListBuilderAdd", func(in *Input, out *Result) {
		as[*ValueListBuilder](in.GetObject(-1)).Add(in.GetValue(-1))
	})
	register(ValueListBuilderEnd, "ValueListBuilderEnd", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueListBuilder](in.GetObject(-1)).End()
	})

	register(ObjectListBuilderNew, "ObjectListBuilderNew", func(in *Input, out *Result) {
		out.ReturnedObject = NewObjectListBuilder()
	})
	register(ObjectListBuilderAdd, "ObjectListBuilderAdd", func(in *Input, out *Result) {
		as[*ObjectListBuilder](in.GetObject(-2)).Add(in.GetObject(-1))
	})
	register(ObjectListBuilderEnd, "ObjectListBuilderEnd", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectListBuilder](in.GetObject(-1)).End()
	})

	register(ValueListAdd, "ValueListAdd", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueList](in.GetObject(-1)).Add(in.GetValue(-1))
	})
	register(ValueListSet, "ValueListSet", func(in *Input, out *Result) {
		l := as[*ValueList](in.GetObject(-1))
		i := intArg(in, -2)
		if i < 0 || i >= l.Len() {
			panic(newFault(ListIndexOutOfRange, "List index %d is out of range.", i))
		}
		out.ReturnedObject = l.Set(i, in.GetValue(-1))
	})
	register(ValueListConcat, "ValueListConcat", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueList](in.GetObject(-2)).Concat(as[*ValueList](in.GetObject(-1)))
	})
	register(ValueListGet, "ValueListGet", func(in *Input, out *Result) {
		l := as[*ValueList](in.GetObject(-1))
		i := intArg(in, -1)
		if i < 0 || i >= l.Len() {
			panic(newFault(ListIndexOutOfRange, "List index %d is out of range.", i))
		}
		out.ReturnedValue = l.Get(i)
	})

	register(ObjectListAdd, "ObjectListAdd", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectList](in.GetObject(-2)).Add(in.GetObject(-1))
	})
	register(ObjectListSet, "ObjectListSet", func(in *Input, out *Result) {
		l := as[*ObjectList](in.GetObject(-2))
		i := intArg(in, -1)
		if i < 0 || i >= l.Len() {
			panic(newFault(ListIndexOutOfRange, "List index %d is out of range.", i))
		}
		out.ReturnedObject = l.Set(i, in.GetObject(-1))
	})
	register(ObjectListConcat, "ObjectListConcat", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectList](in.GetObject(-2)).Concat(as[*ObjectList](in.GetObject(-1)))
	})
	register(ObjectListGet, "ObjectListGet", func(in *Input, out *Result) {
		l := as[*ObjectList](in.GetObject(-1))
		i := intArg(in, -1)
		if i < 0 || i >= l.Len() {
			panic(newFault(ListIndexOutOfRange, "List index %d is out of range.", i))
		}
		out.ReturnedObject = l.Get(i)
	})
}

// midEnd computes ListMid's exclusive end index. spec.md §4.5: start < 0
// and start >= size both fault ListIndexOutOfRange (the latter only when
// the list is non-empty; start == 0 on an empty list is in range, yielding
// an empty result rather than an error); count < 0 faults InvalidArgument;
// an overshooting start+count silently clamps to the list's length.
func midEnd(start, count, length int) int {
	if start < 0 || (length > 0 && start >= length) {
		panic(newFault(ListIndexOutOfRange, "List index %d is out of range.", start))
	}
	if count < 0 {
		panic(newFault(InvalidArgument, "Mid count %d is negative.", count))
	}
	end := start + count
	if end > length {
		end = length
	}
	return end
}

// skipStart computes Skip's start index / Take's end index. spec.md §4.5:
// n < 0 faults InvalidArgument; n >= size is not an error (clamped).
func skipStart(n, length int) int {
	if n < 0 {
		panic(newFault(InvalidArgument, "Count %d is negative.", n))
	}
	if n > length {
		return length
	}
	return n
}
