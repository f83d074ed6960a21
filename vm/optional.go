package vm

// ValueOptional carries at most one Value. Per spec.md §3 it is either
// empty or holds exactly one element; there is no third state.
type ValueOptional struct {
	item    Value
	present bool
}

var _ Object = (*ValueOptional)(nil)

// Kind implements Object.
func (*ValueOptional) Kind() ObjectKind { return ObjectKindValueOptional }

// NewValueOptionalMissing returns an empty optional.
func NewValueOptionalMissing() *ValueOptional { return &ValueOptional{} }

// NewValueOptionalPresent returns an optional holding v.
func NewValueOptionalPresent(v Value) *ValueOptional {
	return &ValueOptional{item: v, present: true}
}

// HasValue reports whether the optional holds an element.
func (o *ValueOptional) HasValue() bool { return o.present }

// Value returns the held element. The caller (the ValueV intrinsic) is
// responsible for raising ValueNotPresent when HasValue is false.
func (o *ValueOptional) Value() Value { return o.item }

func (o *ValueOptional) equalObject(other Object) bool {
	v := as[*ValueOptional](other)
	if o.present != v.present {
		return false
	}
	return !o.present || o.item.Equal(v.item)
}

// ObjectOptional carries at most one Object.
type ObjectOptional struct {
	item    Object
	present bool
}

var _ Object = (*ObjectOptional)(nil)

// Kind implements Object.
func (*ObjectOptional) Kind() ObjectKind { return ObjectKindObjectOptional }

// NewObjectOptionalMissing returns an empty optional.
func NewObjectOptionalMissing() *ObjectOptional { return &ObjectOptional{} }

// NewObjectOptionalPresent returns an optional holding o.
func NewObjectOptionalPresent(o Object) *ObjectOptional {
	return &ObjectOptional{item: o, present: true}
}

// HasValue reports whether the optional holds an element.
func (o *ObjectOptional) HasValue() bool { return o.present }

// Value returns the held element.
func (o *ObjectOptional) Value() Object { return o.item }

func (o *ObjectOptional) equalObject(other Object) bool {
	v := as[*ObjectOptional](other)
	if o.present != v.present {
		return false
	}
	return !o.present || objectsEqual(o.item, v.item)
}
