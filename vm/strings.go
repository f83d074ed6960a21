package vm

import (
	"strings"
	"unicode"
)

func registerStrings() {
	register(StringConcat, "StringConcat", func(in *Input, out *Result) {
		a := as[*String](in.GetObject(-2))
		b := as[*String](in.GetObject(-1))
		out.ReturnedObject = concatStrings(a, b)
	})

	register(StringEquals, "StringEquals", func(in *Input, out *Result) {
		a := as[*String](in.GetObject(-2))
		b := as[*String](in.GetObject(-1))
		out.ReturnedValue = NewBoolValue(a.equalString(b))
	})

	register(StringLen, "StringLen", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		out.ReturnedValue = NewIntValue(int64(s.Len()))
	})

	register(Chr, "Chr", func(in *Input, out *Result) {
		cp := in.GetValue(-1).GetInt64()
		if cp <= 0 {
			out.ReturnedObject = Empty()
			return
		}
		out.ReturnedObject = NewStringFromCodePoints([]rune{rune(cp)})
	})

	register(CodePoints, "CodePoints", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		b := NewValueListBuilder()
		for _, r := range s.CodePoints() {
			b.Add(NewIntValue(int64(r)))
		}
		out.ReturnedObject = b.End()
	})

	register(CodeUnits, "CodeUnits", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		b := NewValueListBuilder()
		for _, u := range s.Units() {
			b.Add(NewIntValue(int64(u)))
		}
		out.ReturnedObject = b.End()
	})

	// CodeUnit1 takes the string alone and returns its first code unit,
	// or the sentinel 0xFFFF when the string is empty (spec.md §4.5).
	register(CodeUnit1, "CodeUnit1", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		if s.Len() == 0 {
			out.ReturnedValue = NewIntValue(0xFFFF)
			return
		}
		out.ReturnedValue = NewIntValue(int64(s.CodeUnitAt(0)))
	})

	// CodeUnit2 takes the string and an explicit index.
	register(CodeUnit2, "CodeUnit2", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		i := int(in.GetValue(-1).GetInt64())
		out.ReturnedValue = NewIntValue(int64(s.CodeUnitAt(i)))
	})

	register(StringFromCodePoints, "StringFromCodePoints", func(in *Input, out *Result) {
		l := as[*ValueList](in.GetObject(-1))
		points := make([]rune, l.Len())
		for i := 0; i < l.Len(); i++ {
			points[i] = rune(l.Get(i).GetInt64())
		}
		out.ReturnedObject = NewStringFromCodePoints(points)
	})

	register(StringFromCodeUnits, "StringFromCodeUnits", func(in *Input, out *Result) {
		l := as[*ValueList](in.GetObject(-1))
		units := make([]uint16, l.Len())
		for i := 0; i < l.Len(); i++ {
			units[i] = uint16(l.Get(i).GetInt64())
		}
		out.ReturnedObject = NewStringFromUnits(units)
	})

	register(Characters1, "Characters1", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-1))
		out.ReturnedObject = graphemeList(s)
	})

	// Characters2 additionally takes a locale name; this port's grapheme
	// segmentation (see segmentGraphemes) has no locale-specific behavior,
	// so it delegates to the same splitter as Characters1 (see DESIGN.md).
	register(Characters2, "Characters2", func(in *Input, out *Result) {
		s := as[*String](in.GetObject(-2))
		out.ReturnedObject = graphemeList(s)
	})

	// Concat1 joins a list of strings with no separator.
	register(Concat1, "Concat1", func(in *Input, out *Result) {
		list := as[*ObjectList](in.GetObject(-1))
		out.ReturnedObject = joinStrings(list, "")
	})

	// Concat2 joins a list of strings, inserting sep between every pair
	// (never before the first nor after the last element).
	register(Concat2, "Concat2", func(in *Input, out *Result) {
		list := as[*ObjectList](in.GetObject(-2))
		sep := as[*String](in.GetObject(-1))
		out.ReturnedObject = joinStrings(list, sep.Utf8())
	})
}

func joinStrings(list *ObjectList, sep string) *String {
	parts := make([]string, list.Len())
	for i := 0; i < list.Len(); i++ {
		parts[i] = as[*String](list.Get(i)).Utf8()
	}
	return NewString(strings.Join(parts, sep))
}

func graphemeList(s *String) *ObjectList {
	b := NewObjectListBuilder()
	for _, cluster := range segmentGraphemes(s.CodePoints()) {
		b.Add(NewStringFromCodePoints(cluster))
	}
	return b.End()
}

// segmentGraphemes splits code points into extended grapheme clusters using
// the Unicode combining-mark category: a cluster is a base code point
// followed by every combining mark (category M) that follows it. This is a
// deliberately simplified approximation of full UAX #29 grapheme-cluster
// breaking (it does not special-case Hangul jamo, emoji ZWJ sequences, or
// regional indicators) — no dependency in this module's pack implements
// full UAX #29, so the standard library's unicode.M category table is the
// best available building block (see DESIGN.md).
func segmentGraphemes(points []rune) [][]rune {
	var clusters [][]rune
	for _, r := range points {
		if unicode.Is(unicode.M, r) && len(clusters) > 0 {
			last := len(clusters) - 1
			clusters[last] = append(clusters[last], r)
			continue
		}
		clusters = append(clusters, []rune{r})
	}
	return clusters
}
