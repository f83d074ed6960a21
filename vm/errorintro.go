package vm

// registerErrorIntrospection wires the two intrinsics a catch body uses to
// inspect the error it is handling: spec.md §4.6 (c) guarantees
// Input.ErrorCode/ErrorMessage are only meaningful while a catch body is
// executing, a guarantee the interpreter (not this package) upholds.
func registerErrorIntrospection() {
	register(ErrorCodeCall, "ErrorCode", func(in *Input, out *Result) {
		out.ReturnedValue = NewIntValue(int64(in.ErrorCode))
	})
	register(ErrorMessageCall, "ErrorMessage", func(in *Input, out *Result) {
		out.ReturnedObject = NewString(in.ErrorMessage)
	})
}
