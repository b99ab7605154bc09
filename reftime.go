package sac

import (
	"fmt"
	"math"
	"time"
)

func intDefined(v int32) bool { return v != Undefined }

// Time returns the reference time assembled from the nz fields. It
// returns ErrNotTime while any of them is undefined.
func (r *Record) Time() (time.Time, error) {
	if !intDefined(r.Nzyear) || !intDefined(r.Nzjday) || !intDefined(r.Nzhour) ||
		!intDefined(r.Nzmin) || !intDefined(r.Nzsec) || !intDefined(r.Nzmsec) {
		return time.Time{}, fmt.Errorf("reference time: %w", ErrNotTime)
	}
	t := time.Date(int(r.Nzyear), time.January, 1,
		int(r.Nzhour), int(r.Nzmin), int(r.Nzsec),
		int(r.Nzmsec)*int(time.Millisecond), time.UTC)
	return t.AddDate(0, 0, int(r.Nzjday)-1), nil
}

// SetTime sets the reference time fields from t, truncated to millisecond
// precision.
func (r *Record) SetTime(t time.Time) {
	r.Nzyear = int32(t.Year())
	r.Nzjday = int32(t.YearDay())
	r.Nzhour = int32(t.Hour())
	r.Nzmin = int32(t.Minute())
	r.Nzsec = int32(t.Second())
	r.Nzmsec = int32(t.Nanosecond() / int(time.Millisecond))
}

// markOffset returns the relative time of the named mark. Marks are "b"
// (or "z"), "e", "o", "a" and "t0".."t9". An undefined mark yields
// ErrNotTime, an unrecognized name ErrBadKey.
func (r *Record) markOffset(mark string) (time.Duration, error) {
	var v float32
	switch mark {
	case "z", "b":
		v = r.B
	case "e":
		v = r.E
	case "o":
		v = r.O
	case "a":
		v = r.A
	case "t0":
		v = r.T0
	case "t1":
		v = r.T1
	case "t2":
		v = r.T2
	case "t3":
		v = r.T3
	case "t4":
		v = r.T4
	case "t5":
		v = r.T5
	case "t6":
		v = r.T6
	case "t7":
		v = r.T7
	case "t8":
		v = r.T8
	case "t9":
		v = r.T9
	default:
		return 0, fmt.Errorf("mark %q: %w", mark, ErrBadKey)
	}
	if v == float32(Undefined) {
		return 0, fmt.Errorf("mark %q: %w", mark, ErrNotTime)
	}
	sec, frac := math.Modf(float64(v))
	return time.Duration(sec)*time.Second + time.Duration(frac*1e9), nil
}

// DateTime returns the absolute time of the named mark: the reference
// time plus the mark's relative offset.
func (r *Record) DateTime(mark string) (time.Time, error) {
	tref, err := r.Time()
	if err != nil {
		return time.Time{}, err
	}
	dt, err := r.markOffset(mark)
	if err != nil {
		return time.Time{}, err
	}
	return tref.Add(dt), nil
}
