package sac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TaperKind selects the symmetric taper window applied by Taper.
type TaperKind int

const (
	TaperCosine TaperKind = iota
	TaperHanning
	TaperHamming
)

func taperWeight(kind TaperKind, i, nw int) float64 {
	x := float64(i)
	w := float64(nw)
	switch kind {
	case TaperHanning:
		return 0.50 - 0.50*math.Cos(x*math.Pi/w)
	case TaperHamming:
		return 0.54 - 0.46*math.Cos(x*math.Pi/w)
	default:
		return math.Sin(x * math.Pi / (2 * w))
	}
}

// Taper returns a copy with both ends of the data tapered to zero. The
// taper spans round(width*(npts+1)) samples on each end, at least 2 and
// at most half the record; width is typically a few percent.
func (r *Record) Taper(width float64, kind TaperKind) (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("taper: %w", err)
	}
	nw := int(math.Round(width * float64(r.Npts+1)))
	if nw < 2 {
		nw = 2
	}
	n := len(r.Y)
	if nw > n/2 {
		nw = n / 2
	}
	s := r.Clone()
	for i := 0; i < nw; i++ {
		w := float32(taperWeight(kind, i, nw))
		s.Y[i] *= w
		s.Y[n-i-1] *= w
	}
	s.Extrema()
	return s, nil
}

// RemoveMean returns a copy with the mean subtracted from the data.
func (r *Record) RemoveMean() (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("rmean: %w", err)
	}
	s := r.Clone()
	ys := make([]float64, len(r.Y))
	for i, v := range r.Y {
		ys[i] = float64(v)
	}
	mean := floats.Sum(ys) / float64(len(ys))
	for i := range s.Y {
		s.Y[i] -= float32(mean)
	}
	s.Extrema()
	return s, nil
}

// RemoveTrend returns a copy with the best-fit line (ordinary least
// squares of amplitude against sample time) subtracted from the data.
func (r *Record) RemoveTrend() (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("rtrend: %w", err)
	}
	ts := make([]float64, len(r.Y))
	ys := make([]float64, len(r.Y))
	b, dt := float64(r.B), float64(r.Delta)
	for i, v := range r.Y {
		ts[i] = b + dt*float64(i)
		ys[i] = float64(v)
	}
	intercept, slope := stat.LinearRegression(ts, ys, nil, false)

	s := r.Clone()
	for i := range s.Y {
		s.Y[i] = float32(ys[i] - (intercept + slope*ts[i]))
	}
	s.Extrema()
	return s, nil
}

// Smooth returns a copy smoothed by a centered moving average of
// half-width w. Only samples with a full window survive, so the result
// has npts-2w samples and its begin time advances by w*delta.
func (r *Record) Smooth(w int) (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}
	if w < 0 {
		return nil, fmt.Errorf("smooth: negative half-width %d", w)
	}
	n := len(r.Y)
	if 2*w >= n {
		return nil, fmt.Errorf("smooth: half-width %d too large for %d samples", w, n)
	}
	width := float64(2*w + 1)
	y := make([]float32, 0, n-2*w)
	for i := w; i+w < n; i++ {
		var sum float64
		for j := i - w; j <= i+w; j++ {
			sum += float64(r.Y[j])
		}
		y = append(y, float32(sum/width))
	}
	s := r.Clone()
	s.Npts = int32(len(y))
	s.Y = y
	s.B += s.Delta * float32(w)
	s.Extrema()
	return s, nil
}

// Reverse returns a copy with the sample order reversed. The time axis is
// left untouched: b still labels the first (now last-in-time) sample.
func (r *Record) Reverse() (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("reverse: %w", err)
	}
	s := r.Clone()
	for i, j := 0, len(s.Y)-1; i < j; i, j = i+1, j-1 {
		s.Y[i], s.Y[j] = s.Y[j], s.Y[i]
	}
	return s, nil
}

func rms(y []float32) float64 {
	var sqsum float64
	for _, v := range y {
		f := float64(v)
		sqsum += f * f
	}
	return math.Sqrt(sqsum / float64(len(y)))
}

// RMS returns the root mean square of the data.
func (r *Record) RMS() (float64, error) {
	if err := r.requireTime(); err != nil {
		return 0, fmt.Errorf("rms: %w", err)
	}
	return rms(r.Y), nil
}

// CheckFinite returns ErrNaN when the data contains NaN or infinity.
func (r *Record) CheckFinite() error {
	if !r.IsFinite() {
		return fmt.Errorf("%w in data", ErrNaN)
	}
	return nil
}

// Window is a non-owning view of a contiguous sample range of a record.
// It stays valid as long as the record's data is not reallocated.
type Window struct {
	rec *Record
	n0  int
	n1  int
}

// WindowAt returns the view covering times t0..t1. Both must lie within
// the record's b..e range; the sample indices are rounded to the grid and
// clamped to the data.
func (r *Record) WindowAt(t0, t1 float64) (*Window, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	b, e := float64(r.B), float64(r.E)
	if t0 < b || t0 > e {
		return nil, fmt.Errorf("window start %v outside data range [%v, %v]", t0, b, e)
	}
	if t1 < b || t1 > e {
		return nil, fmt.Errorf("window end %v outside data range [%v, %v]", t1, b, e)
	}
	dt := float64(r.Delta)
	last := float64(r.Npts - 1)
	n0 := clamp(math.Round(t0/dt)-math.Round(b/dt), 0, last)
	n1 := clamp(math.Round(t1/dt)-math.Round(b/dt), 0, last)
	return &Window{rec: r, n0: int(n0), n1: int(n1)}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Amp returns the samples covered by the window, shared with the record.
func (w *Window) Amp() []float32 {
	return w.rec.Y[w.n0 : w.n1+1]
}

// RMS returns the root mean square of the windowed samples.
func (w *Window) RMS() (float64, error) {
	if err := w.rec.requireTime(); err != nil {
		return 0, fmt.Errorf("rms: %w", err)
	}
	return rms(w.Amp()), nil
}
