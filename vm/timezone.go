package vm

import (
	"time"

	// Blank-imported so the binary carries its own copy of the IANA time
	// zone database, the same way the source statically links ICU's tz
	// data — without it, TimeZoneFromName would depend on the host having
	// /usr/share/zoneinfo installed.
	_ "time/tzdata"
)

// TimeZone is an opaque handle to an IANA zone. The source wraps an ICU
// icu::TimeZone; no ICU binding is available in this module's dependency
// pack, so TimeZone wraps the standard library's *time.Location instead —
// the idiomatic Go representation of an IANA zone and the one every
// ecosystem scheduling/calendar library builds on top of (see DESIGN.md).
type TimeZone struct {
	name string
	loc  *time.Location
}

var _ Object = (*TimeZone)(nil)

// Kind implements Object.
func (*TimeZone) Kind() ObjectKind { return ObjectKindTimeZone }

// LoadTimeZone resolves an IANA zone name such as "America/New_York". It
// returns a Fault{InvalidTimeZone} if the name is unknown, matching
// spec.md's "UCAL_UNKNOWN_ZONE_ID semantics rejected" rule.
func LoadTimeZone(name string) (*TimeZone, *Fault) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, newFault(InvalidTimeZone, "The specified time zone was not found.")
	}
	return &TimeZone{name: name, loc: loc}, nil
}

// Name returns the zone's IANA identifier.
func (z *TimeZone) Name() string { return z.name }

// UtcOffset returns the zone's total UTC offset, in milliseconds, at the
// instant (milliseconds since the epoch) given. The result is total, per
// spec.md §3 ("getUtcOffset(instant) → ms is total") — it already folds in
// both the zone's standard offset and any daylight-saving adjustment in
// effect at that instant.
func (z *TimeZone) UtcOffset(instantMs int64) int64 {
	t := time.UnixMilli(instantMs).In(z.loc)
	_, offsetSeconds := t.Zone()
	return int64(offsetSeconds) * 1000
}

func (z *TimeZone) equalObject(other Object) bool {
	return z.name == as[*TimeZone](other).name
}

func (z *TimeZone) hashObject() uint32 { return fnvHash(z.name) }
