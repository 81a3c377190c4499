package host

import (
	"fmt"
	"strings"
	"time"
)

// TemporalKind selects which components of a Temporal are meaningful.
type TemporalKind int

const (
	DateOnly TemporalKind = iota
	TimeOnly
	DateAndTime
)

func (k TemporalKind) String() string {
	return map[TemporalKind]string{
		DateOnly:    "date",
		TimeOnly:    "time",
		DateAndTime: "datetime",
	}[k]
}

// Temporal is a date, a time of day, or a naive datetime. A Temporal never
// carries a zone offset; an offset-bearing datetime is represented by the
// offset-datetime sentinel record (see OffsetDatetime).
type Temporal struct {
	Kind                 TemporalKind
	Year, Month, Day     int
	Hour, Min, Sec, Nsec int
}

func DateOf(year, month, day int) Temporal {
	return Temporal{Kind: DateOnly, Year: year, Month: month, Day: day}
}

func TimeOf(hour, min, sec, nsec int) Temporal {
	return Temporal{Kind: TimeOnly, Hour: hour, Min: min, Sec: sec, Nsec: nsec}
}

func DatetimeOf(year, month, day, hour, min, sec, nsec int) Temporal {
	return Temporal{
		Kind: DateAndTime,
		Year: year, Month: month, Day: day,
		Hour: hour, Min: min, Sec: sec, Nsec: nsec,
	}
}

// String renders the temporal in its document text form: YYYY-MM-DD for
// dates, HH:MM:SS with optional nanosecond fraction for times, and the two
// joined by T for datetimes.
func (t Temporal) String() string {
	date := fmt.Sprintf("%04d-%02d-%02d", t.Year, t.Month, t.Day)
	clock := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Min, t.Sec)
	if t.Nsec != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nsec), "0")
		clock += "." + frac
	}
	switch t.Kind {
	case DateOnly:
		return date
	case TimeOnly:
		return clock
	default:
		return date + "T" + clock
	}
}

// FormatOffset renders a zone offset in minutes east of UTC as Z or
// sign HH:MM.
func FormatOffset(minutes int) string {
	if minutes == 0 {
		return "Z"
	}
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// TemporalSource is the adapter a foreign temporal representation
// implements to be converted without host-specific reflection. Components
// report ok=false when absent; OffsetMinutes reports ok=false for naive
// values.
type TemporalSource interface {
	Date() (year, month, day int, ok bool)
	TimeOfDay() (hour, min, sec, nsec int, ok bool)
	OffsetMinutes() (minutes int, ok bool)
}

// FromSource converts an adapter value. The returned offset is nil for
// naive values. ok is false when the source exposes neither a date nor a
// time of day.
func FromSource(s TemporalSource) (t Temporal, offsetMinutes *int, ok bool) {
	y, mo, d, hasDate := s.Date()
	h, mi, sec, ns, hasTime := s.TimeOfDay()
	switch {
	case hasDate && hasTime:
		t = DatetimeOf(y, mo, d, h, mi, sec, ns)
	case hasDate:
		t = DateOf(y, mo, d)
	case hasTime:
		t = TimeOf(h, mi, sec, ns)
	default:
		return Temporal{}, nil, false
	}
	if off, hasOff := s.OffsetMinutes(); hasOff && hasDate && hasTime {
		offsetMinutes = &off
	}
	return t, offsetMinutes, true
}

// FromTime converts a time.Time to a naive datetime plus its zone offset
// in minutes.
func FromTime(t time.Time) (Temporal, int) {
	_, offSec := t.Zone()
	return DatetimeOf(
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
	), offSec / 60
}
