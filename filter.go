package sac

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// Butterworth order used by the filter methods, matching the SAC default
// of two poles.
const filterOrder = 2

func (r *Record) filterRate() (float64, error) {
	if err := r.requireTime(); err != nil {
		return 0, err
	}
	if r.Delta <= 0 {
		return 0, fmt.Errorf("invalid sample spacing %v", r.Delta)
	}
	return 1 / float64(r.Delta), nil
}

func toFloat64(y []float32) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = float64(v)
	}
	return out
}

func toFloat32(y []float64) []float32 {
	out := make([]float32, len(y))
	for i, v := range y {
		out[i] = float32(v)
	}
	return out
}

func (r *Record) runChain(coeffs []biquad.Coefficients) *Record {
	y := toFloat64(r.Y)
	biquad.NewChain(coeffs).ProcessBlock(y)
	return r.WithNewData(toFloat32(y))
}

// Lowpass returns a copy filtered with a Butterworth lowpass at corner
// frequency fc (Hz).
func (r *Record) Lowpass(fc float64) (*Record, error) {
	rate, err := r.filterRate()
	if err != nil {
		return nil, fmt.Errorf("lowpass: %w", err)
	}
	return r.runChain(design.ButterworthLP(fc, filterOrder, rate)), nil
}

// Highpass returns a copy filtered with a Butterworth highpass at corner
// frequency fc (Hz).
func (r *Record) Highpass(fc float64) (*Record, error) {
	rate, err := r.filterRate()
	if err != nil {
		return nil, fmt.Errorf("highpass: %w", err)
	}
	return r.runChain(design.ButterworthHP(fc, filterOrder, rate)), nil
}

// Bandpass returns a copy filtered to the flow..fhigh band (Hz), a
// highpass at flow cascaded with a lowpass at fhigh.
func (r *Record) Bandpass(flow, fhigh float64) (*Record, error) {
	rate, err := r.filterRate()
	if err != nil {
		return nil, fmt.Errorf("bandpass: %w", err)
	}
	coeffs := append(design.ButterworthHP(flow, filterOrder, rate),
		design.ButterworthLP(fhigh, filterOrder, rate)...)
	return r.runChain(coeffs), nil
}

// Bandreject returns a copy with the flow..fhigh band (Hz) removed: the
// sum of a lowpass at flow and a highpass at fhigh run in parallel.
func (r *Record) Bandreject(flow, fhigh float64) (*Record, error) {
	rate, err := r.filterRate()
	if err != nil {
		return nil, fmt.Errorf("bandreject: %w", err)
	}
	low := toFloat64(r.Y)
	biquad.NewChain(design.ButterworthLP(flow, filterOrder, rate)).ProcessBlock(low)
	high := toFloat64(r.Y)
	biquad.NewChain(design.ButterworthHP(fhigh, filterOrder, rate)).ProcessBlock(high)
	for i := range low {
		low[i] += high[i]
	}
	return r.WithNewData(toFloat32(low)), nil
}
