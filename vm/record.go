package vm

// RecordField is one named, typed slot of a Record. Exactly one of
// ValueField/ObjectField is meaningful, selected by IsObject, mirroring how
// the original code generator lays out mixed value/object records such as
// DateTimeOffset (a DateTime value plus a TimeZone object).
type RecordField struct {
	Name        string
	IsObject    bool
	ValueField  Value
	ObjectField Object
}

// Record is an ordered collection of named fields with a schema fixed at
// construction. spec.md's intrinsic contracts never expose a general
// RecordBuilder — in the original program Record only backs internal
// compound values like DateTimeOffset — so this port keeps the same
// shape: Record is built directly by the date/time intrinsics rather than
// through a builder/dispatch pair (see SPEC_FULL.md §4.5).
type Record struct {
	fields []RecordField
}

var _ Object = (*Record)(nil)

// Kind implements Object.
func (*Record) Kind() ObjectKind { return ObjectKindRecord }

// NewRecord constructs a Record with the given fields, in order.
func NewRecord(fields ...RecordField) *Record {
	return &Record{fields: fields}
}

// Field returns the named field's raw slot. It panics with
// InternalTypeConfusion if no field with that name exists — every caller is
// internal code that names its own schema, so a miss is a programming
// error, not a user-visible fault.
func (r *Record) Field(name string) RecordField {
	for _, f := range r.fields {
		if f.Name == name {
			return f
		}
	}
	panic(newFault(InternalTypeConfusion, "Record has no field named %q.", name))
}

func (r *Record) equalObject(other Object) bool {
	o := as[*Record](other)
	if len(r.fields) != len(o.fields) {
		return false
	}
	for i, f := range r.fields {
		g := o.fields[i]
		if f.Name != g.Name || f.IsObject != g.IsObject {
			return false
		}
		if f.IsObject {
			if !objectsEqual(f.ObjectField, g.ObjectField) {
				return false
			}
		} else if !f.ValueField.Equal(g.ValueField) {
			return false
		}
	}
	// All fields matched: per spec.md §9's Open Question, the source is
	// missing a terminal `return true` here and falls through to an
	// unintended default; this port does not mirror that bug.
	return true
}
