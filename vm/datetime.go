package vm

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Date/DateTime/TimeSpan Values all carry the same underlying unit:
// milliseconds relative to the Unix epoch (1970-01-01T00:00:00Z) for
// instants, or a plain millisecond count for durations. spec.md §4.5 only
// says "milliseconds since a fixed epoch" without naming one (an Open
// Question, see DESIGN.md); Unix epoch is the natural choice for a Go
// port, since time.UnixMilli/UnixMilli() already speak that unit.
func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func intArg(in *Input, k int) int { return int(in.GetValue(k).GetInt64()) }

func registerDateTime() {
	register(DateFromParts, "DateFromParts", func(in *Input, out *Result) {
		y, m, d := intArg(in, -3), intArg(in, -2), intArg(in, -1)
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		out.ReturnedValue = NewIntValue(t.UnixMilli())
	})

	register(DateTimeFromParts, "DateTimeFromParts", func(in *Input, out *Result) {
		y, mo, d := intArg(in, -7), intArg(in, -6), intArg(in, -5)
		h, mi, s, ms := intArg(in, -4), intArg(in, -3), intArg(in, -2), intArg(in, -1)
		t := time.Date(y, time.Month(mo), d, h, mi, s, ms*int(time.Millisecond), time.UTC)
		out.ReturnedValue = NewIntValue(t.UnixMilli())
	})

	register(DateTimeOffsetFromParts, "DateTimeOffsetFromParts", func(in *Input, out *Result) {
		y, mo, d := intArg(in, -7), intArg(in, -6), intArg(in, -5)
		h, mi, s, ms := intArg(in, -4), intArg(in, -3), intArg(in, -2), intArg(in, -1)
		zoneName := as[*String](in.GetObject(-1))
		t := time.Date(y, time.Month(mo), d, h, mi, s, ms*int(time.Millisecond), time.UTC)
		zone, fault := LoadTimeZone(zoneName.Utf8())
		if fault != nil {
			panic(fault)
		}
		out.ReturnedObject = NewRecord(
			RecordField{Name: "dateTime", ValueField: NewIntValue(t.UnixMilli())},
			RecordField{Name: "timeZone", IsObject: true, ObjectField: zone},
		)
	})

	register(DateToString, "DateToString", func(in *Input, out *Result) {
		t := millisToTime(in.GetValue(-1).GetInt64())
		out.ReturnedObject = NewString(t.Format("2006-01-02"))
	})

	register(DateTimeToString, "DateTimeToString", func(in *Input, out *Result) {
		t := millisToTime(in.GetValue(-1).GetInt64())
		out.ReturnedObject = NewString(t.Format("2006-01-02 15:04:05.000"))
	})

	register(DateTimeOffsetToString, "DateTimeOffsetToString", func(in *Input, out *Result) {
		rec := as[*Record](in.GetObject(-1))
		ms := rec.Field("dateTime").ValueField.GetInt64()
		zone := as[*TimeZone](rec.Field("timeZone").ObjectField)
		t := time.UnixMilli(ms).In(zone.loc)
		offsetMs := zone.UtcOffset(ms)
		out.ReturnedObject = NewString(fmt.Sprintf("%s %s", t.Format("2006-01-02 15:04:05.000"), formatOffset(offsetMs)))
	})

	register(TimeSpanToString, "TimeSpanToString", func(in *Input, out *Result) {
		out.ReturnedObject = NewString(formatTimeSpan(in.GetValue(-1).GetInt64()))
	})

	// Hours/Minutes/Seconds/Days/Milliseconds are scale factors to
	// milliseconds (spec.md §4.5), not component decomposition: Hours(n) is
	// n hours expressed as milliseconds, not "the hours component of n
	// milliseconds". This makes them the exact inverse of Total*, so
	// TimeSpan construction like Hours(2)+Minutes(30) composes correctly.
	scale := func(which SystemCall, name string, factor int64) {
		register(which, name, func(in *Input, out *Result) {
			out.ReturnedValue = NewIntValue(in.GetValue(-1).GetInt64() * factor)
		})
	}
	scale(Milliseconds, "Milliseconds", 1)
	scale(Seconds, "Seconds", 1000)
	scale(Minutes, "Minutes", 60*1000)
	scale(Hours, "Hours", 60*60*1000)
	scale(Days, "Days", 24*60*60*1000)

	total := func(which SystemCall, name string, divisor int64) {
		register(which, name, func(in *Input, out *Result) {
			out.ReturnedValue = NewIntValue(in.GetValue(-1).GetInt64() / divisor)
		})
	}
	total(TotalMilliseconds, "TotalMilliseconds", 1)
	total(TotalSeconds, "TotalSeconds", 1000)
	total(TotalMinutes, "TotalMinutes", 60*1000)
	total(TotalHours, "TotalHours", 60*60*1000)
	total(TotalDays, "TotalDays", 24*60*60*1000)

	register(TimeZoneFromName, "TimeZoneFromName", func(in *Input, out *Result) {
		name := as[*String](in.GetObject(-1))
		zone, fault := LoadTimeZone(name.Utf8())
		if fault != nil {
			panic(fault)
		}
		out.ReturnedObject = zone
	})

	register(TimeZoneToString, "TimeZoneToString", func(in *Input, out *Result) {
		zone := as[*TimeZone](in.GetObject(-1))
		out.ReturnedObject = NewString(zone.Name())
	})

	register(UtcOffset, "UtcOffset", func(in *Input, out *Result) {
		zone := as[*TimeZone](in.GetObject(-1))
		instantMs := in.GetValue(-1).GetInt64()
		out.ReturnedValue = NewIntValue(zone.UtcOffset(instantMs))
	})

	register(AvailableLocales, "AvailableLocales", func(in *Input, out *Result) {
		b := NewObjectListBuilder()
		for _, tag := range curatedLocales {
			if _, err := language.Parse(tag); err == nil {
				b.Add(NewString(tag))
			}
		}
		out.ReturnedObject = b.End()
	})

	register(AvailableTimeZones, "AvailableTimeZones", func(in *Input, out *Result) {
		b := NewObjectListBuilder()
		for _, name := range curatedTimeZones {
			if _, err := time.LoadLocation(name); err == nil {
				b.Add(NewString(name))
			}
		}
		out.ReturnedObject = b.End()
	})
}

// curatedLocales and curatedTimeZones are fixed snapshots rather than a
// full enumeration of every BCP-47 locale or IANA zone: neither the
// standard library nor any dependency in this module's pack exposes a
// programmatic "list everything installed" API (see DESIGN.md).
var curatedLocales = []string{
	"en-US", "en-GB", "de-DE", "fr-FR", "es-ES", "it-IT", "pt-BR",
	"ja-JP", "ko-KR", "zh-CN", "zh-TW", "ru-RU", "ar-SA", "nl-NL", "pl-PL",
}

var curatedTimeZones = []string{
	"UTC", "America/New_York", "America/Chicago", "America/Denver",
	"America/Los_Angeles", "America/Sao_Paulo", "Europe/London",
	"Europe/Berlin", "Europe/Paris", "Europe/Moscow", "Asia/Tokyo",
	"Asia/Shanghai", "Asia/Kolkata", "Australia/Sydney", "Pacific/Auckland",
}

func formatOffset(offsetMs int64) string {
	sign := "+"
	if offsetMs < 0 {
		sign = "-"
		offsetMs = -offsetMs
	}
	totalMinutes := offsetMs / 60000
	return fmt.Sprintf("%s%02d:%02d", sign, totalMinutes/60, totalMinutes%60)
}

func formatTimeSpan(totalMs int64) string {
	sign := ""
	if totalMs < 0 {
		sign = "-"
		totalMs = -totalMs
	}
	ms := totalMs % 1000
	totalSeconds := totalMs / 1000
	s := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	mi := totalMinutes % 60
	totalHours := totalMinutes / 60
	h := totalHours % 24
	d := totalHours / 24
	return fmt.Sprintf("%s%d.%02d:%02d:%02d.%03d", sign, d, h, mi, s, ms)
}
