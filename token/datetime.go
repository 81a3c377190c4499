package token

import "fmt"

// Datetime holds the components of a scanned RFC-3339-like token. Offset is
// minutes east of UTC and is nil for naive values.
type Datetime struct {
	Year, Month, Day     int
	Hour, Min, Sec, Nsec int
	HasDate, HasTime     bool
	Offset               *int
}

// LooksLikeDatetime reports whether d begins with the shape of a date
// (DDDD-) or a time (DD:). It distinguishes datetime tokens from numbers
// before scanning.
func LooksLikeDatetime(d []byte) bool {
	if len(d) >= 5 && allDigits(d[:4]) && d[4] == '-' {
		return true
	}
	if len(d) >= 3 && allDigits(d[:2]) && d[2] == ':' {
		return true
	}
	return false
}

// ScanDatetime scans a date, time, or datetime token starting at d[0] and
// returns its length and components.
func ScanDatetime(d []byte) (int, *Datetime, error) {
	dt := &Datetime{}
	if len(d) >= 5 && allDigits(d[:4]) && d[4] == '-' {
		if len(d) < 10 || !allDigits(d[5:7]) || d[7] != '-' || !allDigits(d[8:10]) {
			return 0, nil, fmt.Errorf("%w: bad date", ErrDatetime)
		}
		dt.HasDate = true
		dt.Year, dt.Month, dt.Day = num(d[:4]), num(d[5:7]), num(d[8:10])
		if dt.Month < 1 || dt.Month > 12 || dt.Day < 1 || dt.Day > 31 {
			return 0, nil, fmt.Errorf("%w: date out of range", ErrDatetime)
		}
		i := 10
		sep := i < len(d) && (d[i] == 'T' || d[i] == 't' ||
			d[i] == ' ' && i+1 < len(d) && isDecimalDigit(d[i+1]))
		if !sep {
			return i, dt, nil
		}
		i++
		n, err := dt.scanTime(d[i:])
		if err != nil {
			return 0, nil, err
		}
		i += n
		n, off, ok, err := ScanOffset(d[i:])
		if err != nil {
			return 0, nil, err
		}
		if ok {
			dt.Offset = &off
		}
		return i + n, dt, nil
	}
	n, err := dt.scanTime(d)
	if err != nil {
		return 0, nil, err
	}
	return n, dt, nil
}

func (dt *Datetime) scanTime(d []byte) (int, error) {
	if len(d) < 8 || !allDigits(d[:2]) || d[2] != ':' ||
		!allDigits(d[3:5]) || d[5] != ':' || !allDigits(d[6:8]) {
		return 0, fmt.Errorf("%w: bad time", ErrDatetime)
	}
	dt.HasTime = true
	dt.Hour, dt.Min, dt.Sec = num(d[:2]), num(d[3:5]), num(d[6:8])
	if dt.Hour > 23 || dt.Min > 59 || dt.Sec > 60 {
		return 0, fmt.Errorf("%w: time out of range", ErrDatetime)
	}
	i := 8
	if i < len(d) && d[i] == '.' {
		j := i + 1
		for j < len(d) && isDecimalDigit(d[j]) {
			j++
		}
		if j == i+1 {
			return 0, fmt.Errorf("%w: missing fraction digits", ErrDatetime)
		}
		frac := d[i+1 : j]
		nsec := 0
		// digits past nanosecond precision are truncated
		for k := 0; k < 9; k++ {
			nsec *= 10
			if k < len(frac) {
				nsec += int(frac[k] - '0')
			}
		}
		dt.Nsec = nsec
		i = j
	}
	return i, nil
}

// ScanOffset scans a zone offset (Z, z, or sign HH:MM) and returns the
// consumed length and minutes east of UTC. ok is false when d does not
// start with an offset.
func ScanOffset(d []byte) (n, minutes int, ok bool, err error) {
	if len(d) == 0 {
		return 0, 0, false, nil
	}
	switch d[0] {
	case 'Z', 'z':
		return 1, 0, true, nil
	case '+', '-':
		if len(d) < 6 || !allDigits(d[1:3]) || d[3] != ':' || !allDigits(d[4:6]) {
			return 0, 0, false, fmt.Errorf("%w: bad offset", ErrDatetime)
		}
		hh, mm := num(d[1:3]), num(d[4:6])
		if hh > 23 || mm > 59 {
			return 0, 0, false, fmt.Errorf("%w: offset out of range", ErrDatetime)
		}
		m := hh*60 + mm
		if d[0] == '-' {
			m = -m
		}
		return 6, m, true, nil
	}
	return 0, 0, false, nil
}

func allDigits(d []byte) bool {
	for _, c := range d {
		if !isDecimalDigit(c) {
			return false
		}
	}
	return len(d) > 0
}

func num(d []byte) int {
	n := 0
	for _, c := range d {
		n = n*10 + int(c-'0')
	}
	return n
}
