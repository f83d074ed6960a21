package vm

import (
	"encoding/binary"
	"hash/fnv"
)

// hashableObject is implemented by object kinds that may serve as a key in
// an ObjectToValueMap/ObjectToObjectMap. String, TimeZone, ValueList and
// ObjectList implement it; any other kind used as a key is hashed by its
// kind alone (see hashObject).
type hashableObject interface {
	Object
	hashObject() uint32
}

func hashValue(v Value) uint32 {
	h := fnv.New32a()
	h.Write([]byte{byte(v.kind)})
	switch v.kind {
	case valueKindDecimal:
		h.Write([]byte(v.num.String()))
	default:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v.bits)
		h.Write(buf[:])
	}
	return h.Sum32()
}

func hashObject(o Object) uint32 {
	h := fnv.New32a()
	h.Write([]byte{byte(o.Kind())})
	if ho, ok := o.(hashableObject); ok {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], ho.hashObject())
		h.Write(buf[:])
	}
	return h.Sum32()
}

// valueHasher implements immutable.Hasher[Value] for the Value-keyed map
// variants.
type valueHasher struct{}

func (valueHasher) Hash(v Value) uint32   { return hashValue(v) }
func (valueHasher) Equal(a, b Value) bool { return a.Equal(b) }

// objectHasher implements immutable.Hasher[Object] for the Object-keyed map
// variants, using structural equality (objectsEqual) rather than Go
// interface identity.
type objectHasher struct{}

func (objectHasher) Hash(o Object) uint32   { return hashObject(o) }
func (objectHasher) Equal(a, b Object) bool { return objectsEqual(a, b) }

// fnvHash hashes an arbitrary string, shared by every object kind's
// hashObject implementation.
func fnvHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
