package vm

import (
	"github.com/benbjohnson/immutable"
)

// ValueToValueMap is a persistent hash map keyed and valued by Value,
// backed by benbjohnson/immutable's HAMT Map — the Go analogue of the
// source's immer::map<Value, Value>.
type ValueToValueMap struct {
	m *immutable.Map[Value, Value]
}

var _ Object = (*ValueToValueMap)(nil)

// Kind implements Object.
func (*ValueToValueMap) Kind() ObjectKind { return ObjectKindValueToValueMap }

// NewValueToValueMap returns the empty map.
func NewValueToValueMap() *ValueToValueMap {
	return &ValueToValueMap{m: immutable.NewMap[Value, Value](valueHasher{})}
}

// Len returns the number of entries.
func (m *ValueToValueMap) Len() int { return m.m.Len() }

// Get looks up key, returning (value, true) on a hit or (zero, false) on a
// miss. The MapKeyNotFound fault itself is raised by the intrinsic, not
// here, matching the source's "lookups fault on miss" contract living at
// the system-call boundary.
func (m *ValueToValueMap) Get(key Value) (Value, bool) { return m.m.Get(key) }

// Set returns a new map with key bound to value, sharing every other
// bucket with m.
func (m *ValueToValueMap) Set(key, value Value) *ValueToValueMap {
	return &ValueToValueMap{m: m.m.Set(key, value)}
}

// Remove returns a new map with key unbound. Removing an absent key is not
// an error, matching ListSkip/ListTake's "n ≥ size is not an error"
// leniency applied to the map domain (see SPEC_FULL.md §4.5).
func (m *ValueToValueMap) Remove(key Value) *ValueToValueMap {
	return &ValueToValueMap{m: m.m.Delete(key)}
}

// ContainsKey reports whether key is bound.
func (m *ValueToValueMap) ContainsKey(key Value) bool {
	_, ok := m.m.Get(key)
	return ok
}

// Keys returns every bound key as a ValueList, in the map's internal
// iteration order.
func (m *ValueToValueMap) Keys() *ValueList {
	b := NewValueListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		b.Add(k)
	}
	return b.End()
}

// Values returns every value as a ValueList, in the same order as Keys.
func (m *ValueToValueMap) Values() *ValueList {
	b := NewValueListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		_, v, _ := it.Next()
		b.Add(v)
	}
	return b.End()
}

// ValueToObjectMap is keyed by Value and valued by Object.
type ValueToObjectMap struct {
	m *immutable.Map[Value, Object]
}

var _ Object = (*ValueToObjectMap)(nil)

// Kind implements Object.
func (*ValueToObjectMap) Kind() ObjectKind { return ObjectKindValueToObjectMap }

// NewValueToObjectMap returns the empty map.
func NewValueToObjectMap() *ValueToObjectMap {
	return &ValueToObjectMap{m: immutable.NewMap[Value, Object](valueHasher{})}
}

// Len returns the number of entries.
func (m *ValueToObjectMap) Len() int { return m.m.Len() }

// Get looks up key.
func (m *ValueToObjectMap) Get(key Value) (Object, bool) { return m.m.Get(key) }

// Set returns a new map with key bound to value.
func (m *ValueToObjectMap) Set(key Value, value Object) *ValueToObjectMap {
	return &ValueToObjectMap{m: m.m.Set(key, value)}
}

// Remove returns a new map with key unbound.
func (m *ValueToObjectMap) Remove(key Value) *ValueToObjectMap {
	return &ValueToObjectMap{m: m.m.Delete(key)}
}

// ContainsKey reports whether key is bound.
func (m *ValueToObjectMap) ContainsKey(key Value) bool {
	_, ok := m.m.Get(key)
	return ok
}

// Keys returns every bound key as a ValueList.
func (m *ValueToObjectMap) Keys() *ValueList {
	b := NewValueListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		b.Add(k)
	}
	return b.End()
}

// Values returns every value as an ObjectList.
func (m *ValueToObjectMap) Values() *ObjectList {
	b := NewObjectListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		_, v, _ := it.Next()
		b.Add(v)
	}
	return b.End()
}

// ObjectToValueMap is keyed by Object and valued by Value.
type ObjectToValueMap struct {
	m *immutable.Map[Object, Value]
}

var _ Object = (*ObjectToValueMap)(nil)

// Kind implements Object.
func (*ObjectToValueMap) Kind() ObjectKind { return ObjectKindObjectToValueMap }

// NewObjectToValueMap returns the empty map.
func NewObjectToValueMap() *ObjectToValueMap {
	return &ObjectToValueMap{m: immutable.NewMap[Object, Value](objectHasher{})}
}

// Len returns the number of entries.
func (m *ObjectToValueMap) Len() int { return m.m.Len() }

// Get looks up key using structural object equality.
func (m *ObjectToValueMap) Get(key Object) (Value, bool) { return m.m.Get(key) }

// Set returns a new map with key bound to value.
func (m *ObjectToValueMap) Set(key Object, value Value) *ObjectToValueMap {
	return &ObjectToValueMap{m: m.m.Set(key, value)}
}

// Remove returns a new map with key unbound.
func (m *ObjectToValueMap) Remove(key Object) *ObjectToValueMap {
	return &ObjectToValueMap{m: m.m.Delete(key)}
}

// ContainsKey reports whether key is bound.
func (m *ObjectToValueMap) ContainsKey(key Object) bool {
	_, ok := m.m.Get(key)
	return ok
}

// Keys returns every bound key as an ObjectList.
func (m *ObjectToValueMap) Keys() *ObjectList {
	b := NewObjectListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		b.Add(k)
	}
	return b.End()
}

// Values returns every value as a ValueList.
func (m *ObjectToValueMap) Values() *ValueList {
	b := NewValueListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		_, v, _ := it.Next()
		b.Add(v)
	}
	return b.End()
}

// ObjectToObjectMap is keyed and valued by Object.
type ObjectToObjectMap struct {
	m *immutable.Map[Object, Object]
}

var _ Object = (*ObjectToObjectMap)(nil)

// Kind implements Object.
func (*ObjectToObjectMap) Kind() ObjectKind { return ObjectKindObjectToObjectMap }

// NewObjectToObjectMap returns the empty map.
func NewObjectToObjectMap() *ObjectToObjectMap {
	return &ObjectToObjectMap{m: immutable.NewMap[Object, Object](objectHasher{})}
}

// Len returns the number of entries.
func (m *ObjectToObjectMap) Len() int { return m.m.Len() }

// Get looks up key using structural object equality.
func (m *ObjectToObjectMap) Get(key Object) (Object, bool) { return m.m.Get(key) }

// Set returns a new map with key bound to value.
func (m *ObjectToObjectMap) Set(key, value Object) *ObjectToObjectMap {
	return &ObjectToObjectMap{m: m.m.Set(key, value)}
}

// Remove returns a new map with key unbound.
func (m *ObjectToObjectMap) Remove(key Object) *ObjectToObjectMap {
	return &ObjectToObjectMap{m: m.m.Delete(key)}
}

// ContainsKey reports whether key is bound.
func (m *ObjectToObjectMap) ContainsKey(key Object) bool {
	_, ok := m.m.Get(key)
	return ok
}

// Keys returns every bound key as an ObjectList.
func (m *ObjectToObjectMap) Keys() *ObjectList {
	b := NewObjectListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		k, _, _ := it.Next()
		b.Add(k)
	}
	return b.End()
}

// Values returns every value as an ObjectList.
func (m *ObjectToObjectMap) Values() *ObjectList {
	b := NewObjectListBuilder()
	it := m.m.Iterator()
	for !it.Done() {
		_, v, _ := it.Next()
		b.Add(v)
	}
	return b.End()
}
