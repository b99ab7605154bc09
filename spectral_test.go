package sac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanSine returns a sine with exactly k whole cycles across n unit-spaced
// samples, so its energy sits in a single FFT bin.
func cleanSine(n, k int) *Record {
	return Sine(n, 0, 1, float64(k)/float64(n), 0)
}

func TestFFTHeaderBookkeeping(t *testing.T) {
	y := make([]float32, 100)
	y[0] = 1
	r := FromAmp(y, 5.0, 0.025)

	s, err := r.FFT()
	require.NoError(t, err)

	assert.Equal(t, TypeRealImag, s.FileType())
	assert.Equal(t, int32(128), s.Npts, "padded to the next power of two")
	assert.Equal(t, int32(100), s.Nsnpts)
	assert.Equal(t, float32(5.0), s.Sb)
	assert.Equal(t, float32(0.025), s.Sdelta)
	assert.Equal(t, float32(0), s.B)
	assert.InDelta(t, 1.0/(0.025*128), float64(s.Delta), 1e-6)
	assert.InDelta(t, float64(s.Delta)*64, float64(s.E), 1e-4)
	assert.Equal(t, ZeroTimeNone, ZeroTime(s.Iztype))
	assert.Len(t, s.Y, 128)
	assert.Len(t, s.X, 128)
}

func TestFFTRejectsSpectral(t *testing.T) {
	s, err := FromAmp([]float32{1, 2, 3, 4}, 0, 1).FFT()
	require.NoError(t, err)

	_, err = s.FFT()
	assert.ErrorIs(t, err, ErrNotTime)
}

func TestIFFTForeignSpectralHeader(t *testing.T) {
	// A spectral file from another tool has sentinels in nsnpts, sb and
	// sdelta; IFFT must derive them from the spectral header rather than
	// allocate from the sentinel.
	r := New()
	r.SetFileType(TypeRealImag)
	r.Leven = 1
	r.Npts = 8
	r.Delta = 0.125
	r.Y = make([]float32, 8)
	r.X = make([]float32, 8)
	r.Y[1] = 1

	got := roundTrip(t, r)
	back, err := got.IFFT()
	require.NoError(t, err)
	require.Len(t, back.Y, 8)
	assert.Equal(t, int32(8), back.Npts)
	assert.Equal(t, float32(0), back.B)
	assert.Equal(t, float32(1), back.Delta, "dt recovered from 1/(delta*npts)")
}

func TestIFFTRejectsTimeDomain(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3, 4}, 0, 1)
	_, err := r.IFFT()
	assert.ErrorIs(t, err, ErrNotSpectral)
}

func TestFFTRoundTrip(t *testing.T) {
	r := Sine(100, 2.0, 0.05, 1.3, 30)

	s, err := r.FFT()
	require.NoError(t, err)
	back, err := s.IFFT()
	require.NoError(t, err)

	assert.Equal(t, int32(100), back.Npts)
	assert.Equal(t, float32(2.0), back.B)
	assert.Equal(t, float32(0.05), back.Delta)
	assert.Equal(t, TypeTime, back.FileType())
	require.Len(t, back.Y, 100)
	for i := range r.Y {
		assert.InDelta(t, float64(r.Y[i]), float64(back.Y[i]), 1e-4)
	}
}

func TestAmpPhaseRoundTrip(t *testing.T) {
	s, err := cleanSine(64, 3).FFT()
	require.NoError(t, err)
	orig := s.Clone()

	require.NoError(t, s.ToAmpPhase())
	assert.Equal(t, TypeAmpPhase, s.FileType())

	// Converting again changes nothing.
	before := append([]float32(nil), s.Y...)
	require.NoError(t, s.ToAmpPhase())
	assert.Equal(t, before, s.Y)

	require.NoError(t, s.ToRealImag())
	assert.Equal(t, TypeRealImag, s.FileType())
	for i := range orig.Y {
		assert.InDelta(t, float64(orig.Y[i]), float64(s.Y[i]), 1e-4)
		assert.InDelta(t, float64(orig.X[i]), float64(s.X[i]), 1e-4)
	}
}

func TestRepresentationConversionRejectsTime(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, r.ToAmpPhase(), ErrNotSpectral)
	assert.ErrorIs(t, r.ToRealImag(), ErrNotSpectral)
}

func TestIFFTAmpPhaseMatchesRealImag(t *testing.T) {
	s, err := cleanSine(64, 3).FFT()
	require.NoError(t, err)
	fromRI, err := s.IFFT()
	require.NoError(t, err)

	require.NoError(t, s.ToAmpPhase())
	fromAP, err := s.IFFT()
	require.NoError(t, err)

	for i := range fromRI.Y {
		assert.InDelta(t, float64(fromRI.Y[i]), float64(fromAP.Y[i]), 1e-4)
	}
}

// Differentiation in the frequency domain: jw applied to the spectrum of
// sin(wt) must come back as w*cos(wt).
func TestMulOmegaDifferentiates(t *testing.T) {
	const n, k = 128, 4
	r := cleanSine(n, k)

	s, err := r.FFT()
	require.NoError(t, err)
	require.NoError(t, s.MulOmega())
	back, err := s.IFFT()
	require.NoError(t, err)

	w := 2 * math.Pi * float64(k) / float64(n)
	for i := 0; i < n; i++ {
		want := w * math.Cos(w*float64(i))
		assert.InDelta(t, want, float64(back.Y[i]), 1e-3, "sample %d", i)
	}
}

func TestMulOmegaAmpPhaseAgrees(t *testing.T) {
	s1, err := cleanSine(64, 3).FFT()
	require.NoError(t, err)
	s2 := s1.Clone()
	require.NoError(t, s2.ToAmpPhase())

	require.NoError(t, s1.MulOmega())
	require.NoError(t, s2.MulOmega())
	require.NoError(t, s2.ToRealImag())

	for i := range s1.Y {
		assert.InDelta(t, float64(s1.Y[i]), float64(s2.Y[i]), 1e-3)
		assert.InDelta(t, float64(s1.X[i]), float64(s2.X[i]), 1e-3)
	}
}

func TestMulOmegaRejectsTime(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, r.MulOmega(), ErrNotSpectral)
}

func TestDivOmegaUnimplemented(t *testing.T) {
	s, err := FromAmp([]float32{1, 2, 3, 4}, 0, 1).FFT()
	require.NoError(t, err)
	assert.ErrorIs(t, s.DivOmega(), ErrUnimplemented)
}

func TestHilbertOfSine(t *testing.T) {
	const n, k = 128, 4
	r := cleanSine(n, k)

	h, err := r.Hilbert()
	require.NoError(t, err)
	require.Len(t, h.Y, n)

	w := 2 * math.Pi * float64(k) / float64(n)
	for i := 0; i < n; i++ {
		assert.InDelta(t, -math.Cos(w*float64(i)), float64(h.Y[i]), 1e-3, "sample %d", i)
	}
}

func TestAnalyticReconstructsInput(t *testing.T) {
	r := cleanSine(128, 4)
	re, _, err := r.Analytic()
	require.NoError(t, err)

	for i := range r.Y {
		assert.InDelta(t, float64(r.Y[i]), float64(re.Y[i]), 1e-3)
	}
}

func TestEnvelopeOfSineIsUnity(t *testing.T) {
	r := cleanSine(128, 4)
	env, err := r.Envelope()
	require.NoError(t, err)

	for i, v := range env.Y {
		assert.InDelta(t, 1.0, float64(v), 1e-3, "sample %d", i)
	}
}

func TestConvolveImpulses(t *testing.T) {
	a := Impulse(101, 0, 0.1)
	b := Impulse(101, 0, 0.1)

	c, err := Convolve(a, b)
	require.NoError(t, err)

	require.Equal(t, int32(201), c.Npts)
	assert.Equal(t, TypeTime, c.FileType())
	// Both spikes sit at index 50; their convolution peaks at 100.
	assert.InDelta(t, 1.0, float64(c.Y[100]), 1e-6)
	assert.InDelta(t, 0.0, float64(c.Y[0]), 1e-6)
}

func TestCorrelateImpulseWithItself(t *testing.T) {
	a := Impulse(100, 0, 0.1)

	c, err := Correlate(a, a)
	require.NoError(t, err)

	require.Equal(t, int32(199), c.Npts)
	assert.InDelta(t, -9.9, float64(c.B), 1e-5)
	// Zero lag, time -9.9 + 99*0.1 = 0, carries the peak.
	assert.InDelta(t, 1.0, float64(c.Y[99]), 1e-6)
	assert.InDelta(t, 1.0, float64(c.Depmax), 1e-6)
}

func TestConvolveRejectsSpectral(t *testing.T) {
	s, err := FromAmp([]float32{1, 2, 3, 4}, 0, 1).FFT()
	require.NoError(t, err)
	r := FromAmp([]float32{1, 2, 3}, 0, 1)

	_, err = Convolve(s, r)
	assert.ErrorIs(t, err, ErrNotTime)
	_, err = Correlate(r, s)
	assert.ErrorIs(t, err, ErrNotTime)
}
