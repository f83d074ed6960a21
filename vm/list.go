package vm

import (
	"strconv"

	"github.com/benbjohnson/immutable"
)

// ValueList is a persistent, immutable indexed sequence of Value. It is
// backed by github.com/benbjohnson/immutable's List, a bit-partitioned
// vector trie — the Go analogue of the source's immer::vector<Value> —
// giving every structural edit (Add/Set/Concat) O(log n) cost while
// sharing unaffected storage with the predecessor, per spec.md §3's
// "naive deep-copy is not acceptable" requirement.
type ValueList struct {
	items *immutable.List[Value]
}

var _ Object = (*ValueList)(nil)

// Kind implements Object.
func (*ValueList) Kind() ObjectKind { return ObjectKindValueList }

// NewValueList constructs a ValueList from a fixed slice of Value.
func NewValueList(items ...Value) *ValueList {
	return &ValueList{items: immutable.NewList[Value](items...)}
}

// Len returns the number of elements.
func (l *ValueList) Len() int { return l.items.Len() }

// Get returns the element at index i. It does no bounds checking of its
// own; callers check first (ValueListGet faults ListIndexOutOfRange on an
// out-of-range index before calling it).
func (l *ValueList) Get(i int) Value { return l.items.Get(i) }

// Add appends elem, returning a new list sharing l's backing storage.
func (l *ValueList) Add(elem Value) *ValueList {
	return &ValueList{items: l.items.Append(elem)}
}

// Set replaces the element at index i, returning a new list sharing l's
// backing storage everywhere but the modified path.
func (l *ValueList) Set(i int, elem Value) *ValueList {
	return &ValueList{items: l.items.Set(i, elem)}
}

// Concat appends every element of other after l's elements.
func (l *ValueList) Concat(other *ValueList) *ValueList {
	items := l.items
	it := other.items.Iterator()
	for !it.Done() {
		_, v := it.Next()
		items = items.Append(v)
	}
	return &ValueList{items: items}
}

// Slice returns the elements in [start, end).
func (l *ValueList) Slice(start, end int) []Value {
	out := make([]Value, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, l.items.Get(i))
	}
	return out
}

func (l *ValueList) equalObject(other Object) bool {
	o := as[*ValueList](other)
	if l.Len() != o.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !l.Get(i).Equal(o.Get(i)) {
			return false
		}
	}
	return true
}

func (l *ValueList) hashObject() uint32 {
	s := strconv.Itoa(l.Len())
	for i := 0; i < l.Len() && i < 8; i++ {
		s += ":" + l.Get(i).GetString()
	}
	return fnvHash(s)
}

// ValueListBuilder is the single-use, mutable producer that freezes into a
// ValueList via ValueListBuilderEnd.
type ValueListBuilder struct {
	items *immutable.ListBuilder[Value]
}

var _ Object = (*ValueListBuilder)(nil)

// Kind implements Object.
func (*ValueListBuilder) Kind() ObjectKind { return ObjectKindValueListBuilder }

// NewValueListBuilder constructs an empty builder.
func NewValueListBuilder() *ValueListBuilder {
	return &ValueListBuilder{items: immutable.NewListBuilder[Value]()}
}

// Add appends an element to the builder.
func (b *ValueListBuilder) Add(v Value) { b.items.Append(v) }

// End freezes the builder into a persistent ValueList. The builder must
// not be used afterward (single-producer contract, spec.md §3).
func (b *ValueListBuilder) End() *ValueList {
	return &ValueList{items: b.items.List()}
}

// ObjectList is the Object-valued counterpart of ValueList.
type ObjectList struct {
	items *immutable.List[Object]
}

var _ Object = (*ObjectList)(nil)

// Kind implements Object.
func (*ObjectList) Kind() ObjectKind { return ObjectKindObjectList }

// NewObjectList constructs an ObjectList from a fixed slice of Object.
func NewObjectList(items ...Object) *ObjectList {
	return &ObjectList{items: immutable.NewList[Object](items...)}
}

// Len returns the number of elements.
func (l *ObjectList) Len() int { return l.items.Len() }

// Get returns the element at index i.
func (l *ObjectList) Get(i int) Object { return l.items.Get(i) }

// Add appends elem, returning a new list sharing l's backing storage.
func (l *ObjectList) Add(elem Object) *ObjectList {
	return &ObjectList{items: l.items.Append(elem)}
}

// Set replaces the element at index i.
func (l *ObjectList) Set(i int, elem Object) *ObjectList {
	return &ObjectList{items: l.items.Set(i, elem)}
}

// Concat appends every element of other after l's elements.
func (l *ObjectList) Concat(other *ObjectList) *ObjectList {
	items := l.items
	it := other.items.Iterator()
	for !it.Done() {
		_, v := it.Next()
		items = items.Append(v)
	}
	return &ObjectList{items: items}
}

// Slice returns the elements in [start, end).
func (l *ObjectList) Slice(start, end int) []Object {
	out := make([]Object, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, l.items.Get(i))
	}
	return out
}

func (l *ObjectList) equalObject(other Object) bool {
	o := as[*ObjectList](other)
	if l.Len() != o.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !objectsEqual(l.Get(i), o.Get(i)) {
			return false
		}
	}
	return true
}

func (l *ObjectList) hashObject() uint32 {
	s := strconv.Itoa(l.Len())
	return fnvHash(s)
}

// ObjectListBuilder is the Object-valued counterpart of ValueListBuilder.
type ObjectListBuilder struct {
	items *immutable.ListBuilder[Object]
}

var _ Object = (*ObjectListBuilder)(nil)

// Kind implements Object.
func (*ObjectListBuilder) Kind() ObjectKind { return ObjectKindObjectListBuilder }

// NewObjectListBuilder constructs an empty builder.
func NewObjectListBuilder() *ObjectListBuilder {
	return &ObjectListBuilder{items: immutable.NewListBuilder[Object]()}
}

// Add appends an element to the builder. It panics with InternalTypeConfusion
// if elem is itself a builder — spec.md §3's "pushing a builder onto a
// durable container is forbidden" assertion.
func (b *ObjectListBuilder) Add(elem Object) {
	if isBuilder(elem) {
		panic(newFault(InternalTypeConfusion, "Cannot add a builder as a list element."))
	}
	b.items.Append(elem)
}

// End freezes the builder into a persistent ObjectList.
func (b *ObjectListBuilder) End() *ObjectList {
	return &ObjectList{items: b.items.List()}
}
