package vm

import (
	"unicode/utf16"
	"unicode/utf8"
)

// String is the immutable UTF-16 code-unit sequence object. The source
// stores an icu::UnicodeString (UTF-16 internally); this port stores the
// same code-unit sequence as a []uint16 using the standard library's
// unicode/utf16 codec — there is no pack dependency that represents UTF-16
// code units more directly than the standard library already does, so this
// one low-level conversion is a justified stdlib use (see DESIGN.md).
type String struct {
	units []uint16
}

var _ Object = (*String)(nil)

// Kind implements Object.
func (*String) Kind() ObjectKind { return ObjectKindString }

// NewString constructs a String object from a Go string, which is assumed
// to be valid UTF-8 (the encoding every console stream and file intrinsic
// uses on the wire, per spec.md §6).
func NewString(s string) *String {
	return &String{units: utf16.Encode([]rune(s))}
}

// NewStringFromUnits constructs a String directly from a UTF-16 code-unit
// slice, used by StringFromCodeUnits.
func NewStringFromUnits(units []uint16) *String {
	cp := make([]uint16, len(units))
	copy(cp, units)
	return &String{units: cp}
}

// NewStringFromCodePoints constructs a String from a slice of Unicode
// code points, used by StringFromCodePoints.
func NewStringFromCodePoints(points []rune) *String {
	return &String{units: utf16.Encode(points)}
}

// Empty is the canonical empty string, returned by Chr when its argument is
// non-positive.
func Empty() *String { return &String{} }

// Utf8 decodes the code-unit sequence back to a Go (UTF-8) string.
func (s *String) Utf8() string {
	return string(utf16.Decode(s.units))
}

// Units returns the raw UTF-16 code units.
func (s *String) Units() []uint16 { return s.units }

// Len returns the number of UTF-16 code units, matching StringLen/Len.
func (s *String) Len() int { return len(s.units) }

// CodePointCount returns the number of Unicode code points (counting a
// surrogate pair as one), derived from the code-unit sequence as spec.md
// §3 requires ("code-point count derivable").
func (s *String) CodePointCount() int {
	return len(utf16.Decode(s.units))
}

// CodePoints returns the string's Unicode code points.
func (s *String) CodePoints() []rune {
	return utf16.Decode(s.units)
}

// CodeUnitAt returns the code unit at index i, or the sentinel 0xFFFF if i
// is out of range — matching the source's icu::UnicodeString::charAt,
// which CodeUnit1/CodeUnit2 rely on to detect "no such index" without an
// exception.
func (s *String) CodeUnitAt(i int) uint16 {
	if i < 0 || i >= len(s.units) {
		return 0xFFFF
	}
	return s.units[i]
}

// Slice returns the substring spanning code units [start, end).
func (s *String) Slice(start, end int) *String {
	return NewStringFromUnits(s.units[start:end])
}

func (s *String) equalObject(other Object) bool {
	o := as[*String](other)
	if len(s.units) != len(o.units) {
		return false
	}
	for i, u := range s.units {
		if o.units[i] != u {
			return false
		}
	}
	return true
}

func (s *String) equalString(other *String) bool { return s.equalObject(other) }

func (s *String) hashObject() uint32 {
	h := fnvHash(s.Utf8())
	return h
}

// concatStrings concatenates a.Utf8()+b.Utf8() without an intermediate
// UTF-8 round trip, operating directly on code units like the source's
// String::operator+.
func concatStrings(a, b *String) *String {
	units := make([]uint16, 0, len(a.units)+len(b.units))
	units = append(units, a.units...)
	units = append(units, b.units...)
	return &String{units: units}
}

// isValidUTF8 reports whether s is well-formed UTF-8.
func isValidUTF8(s string) bool { return utf8.ValidString(s) }
