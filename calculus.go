package sac

import "fmt"

// Int returns the running trapezoidal integral of the data. The result
// has npts-1 samples; sample i holds the integral up to original sample
// i+1. Extrema and the derived end time are recomputed.
func (r *Record) Int() (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("int: %w", err)
	}
	f := float64(r.Delta) / 2
	y := make([]float32, len(r.Y)-1)
	var sum float64
	for i := range y {
		sum += f * (float64(r.Y[i]) + float64(r.Y[i+1]))
		y[i] = float32(sum)
	}
	return r.WithNewData(y), nil
}

// Dif returns the forward finite difference of the data divided by the
// sample spacing. The result has npts-1 samples.
func (r *Record) Dif() (*Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, fmt.Errorf("dif: %w", err)
	}
	inv := 1 / float64(r.Delta)
	y := make([]float32, len(r.Y)-1)
	for i := range y {
		y[i] = float32(inv * (float64(r.Y[i+1]) - float64(r.Y[i])))
	}
	return r.WithNewData(y), nil
}
