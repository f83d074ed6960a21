package vm

func registerOptionals() {
	register(ValueOptionalNewMissing, "ValueOptionalNewMissing", func(in *Input, out *Result) {
		out.ReturnedObject = NewValueOptionalMissing()
	})
	register(ValueOptionalNewPresent, "ValueOptionalNewPresent", func(in *Input, out *Result) {
		out.ReturnedObject = NewValueOptionalPresent(in.GetValue(-1))
	})
	register(HasValueV, "HasValueV", func(in *Input, out *Result) {
		out.ReturnedValue = NewBoolValue(as[*ValueOptional](in.GetObject(-1)).HasValue())
	})
	register(ValueV, "ValueV", func(in *Input, out *Result) {
		o := as[*ValueOptional](in.GetObject(-1))
		if !o.HasValue() {
			panic(newFault(ValueNotPresent, "The optional value is not present."))
		}
		out.ReturnedValue = o.Value()
	})

	register(ObjectOptionalNewMissing, "ObjectOptionalNewMissing", func(in *Input, out *Result) {
		out.ReturnedObject = NewObjectOptionalMissing()
	})
	register(ObjectOptionalNewPresent, "ObjectOptionalNewPresent", func(in *Input, out *Result) {
		out.ReturnedObject = NewObjectOptionalPresent(in.GetObject(-1))
	})
	register(HasValueO, "HasValueO", func(in *Input, out *Result) {
		out.ReturnedValue = NewBoolValue(as[*ObjectOptional](in.GetObject(-1)).HasValue())
	})
	register(ValueO, "ValueO", func(in *Input, out *Result) {
		o := as[*ObjectOptional](in.GetObject(-1))
		if !o.HasValue() {
			panic(newFault(ValueNotPresent, "The optional value is not present."))
		}
		out.ReturnedObject = o.Value()
	})
}
