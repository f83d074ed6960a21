package vm

// registerMaps wires the four symmetric {Value,Object}x{Value,Object} map
// variants; each gets New/Get/Set/Remove/ContainsKey/Len/Keys/Values,
// matching the expanded map operation contract in SPEC_FULL.md §4.5.
//
// Stack layout convention used throughout this file: a map argument and any
// Object-typed key/value argument live on the object stack in call order
// (map first), while any Value-typed key/value argument lives on the value
// stack in call order — mirroring how the interpreter pushes mixed-typed
// call arguments onto the two separate operand stacks.
func registerMaps() {
	register(ValueToValueMapNew, "ValueToValueMapNew", func(in *Input, out *Result) {
		out.ReturnedObject = NewValueToValueMap()
	})
	register(ValueToValueMapGet, "ValueToValueMapGet", func(in *Input, out *Result) {
		m := as[*ValueToValueMap](in.GetObject(-1))
		v, ok := m.Get(in.GetValue(-1))
		if !ok {
			panic(newFault(MapKeyNotFound, "The map does not contain the specified key."))
		}
		out.ReturnedValue = v
	})
	register(ValueToValueMapSet, "ValueToValueMapSet", func(in *Input, out *Result) {
		m := as[*ValueToValueMap](in.GetObject(-1))
		out.ReturnedObject = m.Set(in.GetValue(-2), in.GetValue(-1))
	})
	register(ValueToValueMapRemove, "ValueToValueMapRemove", func(in *Input, out *Result) {
		m := as[*ValueToValueMap](in.GetObject(-1))
		out.ReturnedObject = m.Remove(in.GetValue(-1))
	})
	register(ValueToValueMapContainsKey, "ValueToValueMapContainsKey", func(in *Input, out *Result) {
		m := as[*ValueToValueMap](in.GetObject(-1))
		out.ReturnedValue = NewBoolValue(m.ContainsKey(in.GetValue(-1)))
	})
	register(ValueToValueMapLen, "ValueToValueMapLen", func(in *Input, out *Result) {
		m := as[*ValueToValueMap](in.GetObject(-1))
		out.ReturnedValue = NewIntValue(int64(m.Len()))
	})
	register(ValueToValueMapKeys, "ValueToValueMapKeys", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueToValueMap](in.GetObject(-1)).Keys()
	})
	register(ValueToValueMapValues, "ValueToValueMapValues", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueToValueMap](in.GetObject(-1)).Values()
	})

	register(ValueToObjectMapNew, "ValueToObjectMapNew", func(in *Input, out *Result) {
		out.ReturnedObject = NewValueToObjectMap()
	})
	register(ValueToObjectMapGet, "ValueToObjectMapGet", func(in *Input, out *Result) {
		m := as[*ValueToObjectMap](in.GetObject(-1))
		v, ok := m.Get(in.GetValue(-1))
		if !ok {
			panic(newFault(MapKeyNotFound, "The map does not contain the specified key."))
		}
		out.ReturnedObject = v
	})
	register(ValueToObjectMapSet, "ValueToObjectMapSet", func(in *Input, out *Result) {
		m := as[*ValueToObjectMap](in.GetObject(-2))
		value := in.GetObject(-1)
		out.ReturnedObject = m.Set(in.GetValue(-1), value)
	})
	register(ValueToObjectMapRemove, "ValueToObjectMapRemove", func(in *Input, out *Result) {
		m := as[*ValueToObjectMap](in.GetObject(-1))
		out.ReturnedObject = m.Remove(in.GetValue(-1))
	})
	register(ValueToObjectMapContainsKey, "ValueToObjectMapContainsKey", func(in *Input, out *Result) {
		m := as[*ValueToObjectMap](in.GetObject(-1))
		out.ReturnedValue = NewBoolValue(m.ContainsKey(in.GetValue(-1)))
	})
	register(ValueToObjectMapLen, "ValueToObjectMapLen", func(in *Input, out *Result) {
		m := as[*ValueToObjectMap](in.GetObject(-1))
		out.ReturnedValue = NewIntValue(int64(m.Len()))
	})
	register(ValueToObjectMapKeys, "ValueToObjectMapKeys", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueToObjectMap](in.GetObject(-1)).Keys()
	})
	register(ValueToObjectMapValues, "ValueToObjectMapValues", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ValueToObjectMap](in.GetObject(-1)).Values()
	})

	register(ObjectToValueMapNew, "ObjectToValueMapNew", func(in *Input, out *Result) {
		out.ReturnedObject = NewObjectToValueMap()
	})
	register(ObjectToValueMapGet, "ObjectToValueMapGet", func(in *Input, out *Result) {
		m := as[*ObjectToValueMap](in.GetObject(-2))
		v, ok := m.Get(in.GetObject(-1))
		if !ok {
			panic(newFault(MapKeyNotFound, "The map does not contain the specified key."))
		}
		out.ReturnedValue = v
	})
	register(ObjectToValueMapSet, "ObjectToValueMapSet", func(in *Input, out *Result) {
		m := as[*ObjectToValueMap](in.GetObject(-2))
		key := in.GetObject(-1)
		out.ReturnedObject = m.Set(key, in.GetValue(-1))
	})
	register(ObjectToValueMapRemove, "ObjectToValueMapRemove", func(in *Input, out *Result) {
		m := as[*ObjectToValueMap](in.GetObject(-2))
		out.ReturnedObject = m.Remove(in.GetObject(-1))
	})
	register(ObjectToValueMapContainsKey, "ObjectToValueMapContainsKey", func(in *Input, out *Result) {
		m := as[*ObjectToValueMap](in.GetObject(-2))
		out.ReturnedValue = NewBoolValue(m.ContainsKey(in.GetObject(-1)))
	})
	register(ObjectToValueMapLen, "ObjectToValueMapLen", func(in *Input, out *Result) {
		m := as[*ObjectToValueMap](in.GetObject(-1))
		out.ReturnedValue = NewIntValue(int64(m.Len()))
	})
	register(ObjectToValueMapKeys, "ObjectToValueMapKeys", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectToValueMap](in.GetObject(-1)).Keys()
	})
	register(ObjectToValueMapValues, "ObjectToValueMapValues", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectToValueMap](in.GetObject(-1)).Values()
	})

	register(ObjectToObjectMapNew, "ObjectToObjectMapNew", func(in *Input, out *Result) {
		out.ReturnedObject = NewObjectToObjectMap()
	})
	register(ObjectToObjectMapGet, "ObjectToObjectMapGet", func(in *Input, out *Result) {
		m := as[*ObjectToObjectMap](in.GetObject(-2))
		v, ok := m.Get(in.GetObject(-1))
		if !ok {
			panic(newFault(MapKeyNotFound, "The map does not contain the specified key."))
		}
		out.ReturnedObject = v
	})
	register(ObjectToObjectMapSet, "ObjectToObjectMapSet", func(in *Input, out *Result) {
		m := as[*ObjectToObjectMap](in.GetObject(-3))
		out.ReturnedObject = m.Set(in.GetObject(-2), in.GetObject(-1))
	})
	register(ObjectToObjectMapRemove, "ObjectToObjectMapRemove", func(in *Input, out *Result) {
		m := as[*ObjectToObjectMap](in.GetObject(-2))
		out.ReturnedObject = m.Remove(in.GetObject(-1))
	})
	register(ObjectToObjectMapContainsKey, "ObjectToObjectMapContainsKey", func(in *Input, out *Result) {
		m := as[*ObjectToObjectMap](in.GetObject(-2))
		out.ReturnedValue = NewBoolValue(m.ContainsKey(in.GetObject(-1)))
	})
	register(ObjectToObjectMapLen, "ObjectToObjectMapLen", func(in *Input, out *Result) {
		m := as[*ObjectToObjectMap](in.GetObject(-1))
		out.ReturnedValue = NewIntValue(int64(m.Len()))
	})
	register(ObjectToObjectMapKeys, "ObjectToObjectMapKeys", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectToObjectMap](in.GetObject(-1)).Keys()
	})
	register(ObjectToObjectMapValues, "ObjectToObjectMapValues", func(in *Input, out *Result) {
		out.ReturnedObject = as[*ObjectToObjectMap](in.GetObject(-1)).Values()
	})
}
