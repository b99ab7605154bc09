package sac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 100 Hz fixtures: a slow 1 Hz sine and a fast 20 Hz sine, long enough
// that filter start-up transients do not dominate the RMS.
const (
	filterDt   = 0.01
	filterN    = 4000
	slowFreq  = 1.0
	fastFreq  = 20.0
	passFloor = 0.5  // a band the filter keeps must retain most energy
	stopCeil  = 0.15 // a band the filter rejects must lose most energy
)

func slowSine() *Record { return Sine(filterN, 0, filterDt, slowFreq, 0) }
func fastSine() *Record { return Sine(filterN, 0, filterDt, fastFreq, 0) }

func recordRMS(t *testing.T, r *Record) float64 {
	t.Helper()
	v, err := r.RMS()
	require.NoError(t, err)
	return v
}

func TestLowpass(t *testing.T) {
	kept, err := slowSine().Lowpass(5.0)
	require.NoError(t, err)
	assert.Greater(t, recordRMS(t, kept), passFloor)

	removed, err := fastSine().Lowpass(2.0)
	require.NoError(t, err)
	assert.Less(t, recordRMS(t, removed), stopCeil)
}

func TestHighpass(t *testing.T) {
	kept, err := fastSine().Highpass(5.0)
	require.NoError(t, err)
	assert.Greater(t, recordRMS(t, kept), passFloor)

	removed, err := slowSine().Highpass(10.0)
	require.NoError(t, err)
	assert.Less(t, recordRMS(t, removed), stopCeil)
}

func TestBandpass(t *testing.T) {
	mid := Sine(filterN, 0, filterDt, 8.0, 0)
	kept, err := mid.Bandpass(4.0, 16.0)
	require.NoError(t, err)
	assert.Greater(t, recordRMS(t, kept), passFloor)

	low, err := slowSine().Bandpass(4.0, 16.0)
	require.NoError(t, err)
	assert.Less(t, recordRMS(t, low), stopCeil)
}

func TestBandreject(t *testing.T) {
	mid := Sine(filterN, 0, filterDt, 8.0, 0)
	removed, err := mid.Bandreject(2.0, 30.0)
	require.NoError(t, err)
	assert.Less(t, recordRMS(t, removed), 0.3)

	kept, err := slowSine().Bandreject(5.0, 15.0)
	require.NoError(t, err)
	assert.Greater(t, recordRMS(t, kept), passFloor)
}

func TestFilterPreservesShape(t *testing.T) {
	r := slowSine()
	s, err := r.Lowpass(10.0)
	require.NoError(t, err)

	assert.Equal(t, r.Npts, s.Npts)
	assert.Equal(t, r.B, s.B)
	assert.Equal(t, r.Delta, s.Delta)
	assert.Equal(t, float32(1), r.Y[25], "input untouched")
}

func TestFilterRejectsSpectral(t *testing.T) {
	s := spectralFixture(t)

	_, err := s.Lowpass(1.0)
	assert.ErrorIs(t, err, ErrNotTime)
	_, err = s.Highpass(1.0)
	assert.ErrorIs(t, err, ErrNotTime)
	_, err = s.Bandpass(1.0, 2.0)
	assert.ErrorIs(t, err, ErrNotTime)
	_, err = s.Bandreject(1.0, 2.0)
	assert.ErrorIs(t, err, ErrNotTime)
}
