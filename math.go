package sac

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f32"
)

// Sample arithmetic. Each method returns a new record with depmin, depmax
// and depmen recomputed; the input is never modified. The operations apply
// to whatever the Y component holds, so they work on spectra as well
// (e.g. Log10 of an amplitude spectrum).

func (r *Record) apply(f func(float32) float32) *Record {
	s := r.Clone()
	for i, v := range s.Y {
		s.Y[i] = f(v)
	}
	s.ExtremaAmp()
	return s
}

// Exp returns a copy with e**y applied per sample.
func (r *Record) Exp() *Record {
	return r.apply(func(v float32) float32 { return float32(math.Exp(float64(v))) })
}

// Exp10 returns a copy with 10**y applied per sample.
func (r *Record) Exp10() *Record {
	return r.apply(func(v float32) float32 { return float32(math.Pow(10, float64(v))) })
}

// Log returns a copy with the base-2 logarithm applied per sample.
func (r *Record) Log() *Record {
	return r.apply(func(v float32) float32 { return float32(math.Log2(float64(v))) })
}

// Log10 returns a copy with the base-10 logarithm applied per sample.
func (r *Record) Log10() *Record {
	return r.apply(func(v float32) float32 { return float32(math.Log10(float64(v))) })
}

// Abs returns a copy with the absolute value applied per sample.
func (r *Record) Abs() *Record {
	return r.apply(func(v float32) float32 {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Sqr returns a copy with each sample squared.
func (r *Record) Sqr() *Record {
	return r.apply(func(v float32) float32 { return v * v })
}

// Sqrt returns a copy with the square root applied per sample.
func (r *Record) Sqrt() *Record {
	return r.apply(func(v float32) float32 { return float32(math.Sqrt(float64(v))) })
}

// AddScalar returns a copy with v added to every sample.
func (r *Record) AddScalar(v float64) *Record {
	x := float32(v)
	return r.apply(func(y float32) float32 { return y + x })
}

// SubScalar returns a copy with v subtracted from every sample.
func (r *Record) SubScalar(v float64) *Record {
	return r.AddScalar(-v)
}

// MulScalar returns a copy with every sample multiplied by v.
func (r *Record) MulScalar(v float64) *Record {
	s := r.Clone()
	f32.Scale(s.Y, r.Y, float32(v))
	s.ExtremaAmp()
	return s
}

// DivScalar returns a copy with every sample divided by v.
func (r *Record) DivScalar(v float64) *Record {
	return r.MulScalar(1 / v)
}

// Normalize returns a copy scaled so the largest absolute amplitude,
// taken from depmin/depmax, becomes one.
func (r *Record) Normalize() *Record {
	v := float32(math.Abs(float64(r.Depmax)))
	if m := float32(math.Abs(float64(r.Depmin))); m > v {
		v = m
	}
	return r.DivScalar(float64(v))
}

func (r *Record) combine(o *Record, name string, f func(a, b float32) float32) (*Record, error) {
	if len(r.Y) != len(o.Y) {
		return nil, fmt.Errorf("%s: sample counts differ: %d != %d", name, len(r.Y), len(o.Y))
	}
	s := r.Clone()
	for i := range s.Y {
		s.Y[i] = f(r.Y[i], o.Y[i])
	}
	s.ExtremaAmp()
	return s, nil
}

// AddRecord returns the sample-wise sum of two records of equal length.
func (r *Record) AddRecord(o *Record) (*Record, error) {
	return r.combine(o, "add", func(a, b float32) float32 { return a + b })
}

// SubRecord returns the sample-wise difference of two records of equal length.
func (r *Record) SubRecord(o *Record) (*Record, error) {
	return r.combine(o, "sub", func(a, b float32) float32 { return a - b })
}

// MulRecord returns the sample-wise product of two records of equal length.
func (r *Record) MulRecord(o *Record) (*Record, error) {
	return r.combine(o, "mul", func(a, b float32) float32 { return a * b })
}

// DivRecord returns the sample-wise quotient of two records of equal length.
func (r *Record) DivRecord(o *Record) (*Record, error) {
	return r.combine(o, "div", func(a, b float32) float32 { return a / b })
}
