package sac

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// The transforms below run on gonum's complex FFT. Coefficients is the
// unnormalized forward transform; Sequence is the unnormalized inverse, so
// the 1/n factor is applied explicitly where an inverse is taken.

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// forwardFFT transforms y zero padded to length n.
func forwardFFT(y []float32, n int) []complex128 {
	z := make([]complex128, n)
	for i, v := range y {
		z[i] = complex(float64(v), 0)
	}
	return fourier.NewCmplxFFT(n).Coefficients(nil, z)
}

// inverseFFT transforms z back to a sequence, including the 1/n factor.
func inverseFFT(z []complex128) []complex128 {
	n := len(z)
	out := fourier.NewCmplxFFT(n).Sequence(nil, z)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// FFT transforms a time-domain record into a real/imaginary spectrum. The
// data is zero padded to the next power of two and every bin is scaled by
// the sample spacing, so amplitudes approximate the continuous transform.
// The original npts, begin time and spacing are stashed in nsnpts, sb and
// sdelta for the inverse.
func (r *Record) FFT() (*Record, error) {
	if r.IsSpectral() {
		return nil, fmt.Errorf("fft: %w", ErrNotTime)
	}

	n := nextPowerOfTwo(int(r.Npts))
	z := forwardFFT(r.Y, n)

	factor := complex(float64(r.Delta), 0)
	for i := range z {
		z[i] *= factor
	}

	s := New()
	s.CopyHeader(r)
	s.Y = make([]float32, n)
	s.X = make([]float32, n)
	for i, v := range z {
		s.Y[i] = float32(real(v))
		s.X[i] = float32(imag(v))
	}

	s.Nsnpts = r.Npts
	s.Sb = r.B
	s.Sdelta = r.Delta

	s.Leven = 1
	s.Npts = int32(n)
	s.B = 0
	s.Delta = 1 / (r.Delta * float32(n))
	s.E = s.B + s.Delta*float32(n/2)
	s.Iftype = int32(TypeRealImag)
	s.Iztype = int32(ZeroTimeNone)
	s.ExtremaAmp()
	return s, nil
}

// IFFT transforms a spectral record back into the time domain, restoring
// the begin time, spacing and sample count stashed by FFT. When those
// fields are undefined or inconsistent, as in spectra written by other
// tools, they are derived from the spectral header instead. The scale
// header field records the net 1/(sdelta*npts) normalization.
func (r *Record) IFFT() (*Record, error) {
	var z []complex128
	switch r.FileType() {
	case TypeRealImag:
		z = make([]complex128, len(r.Y))
		for i := range r.Y {
			z[i] = complex(float64(r.Y[i]), float64(r.X[i]))
		}
	case TypeAmpPhase:
		z = make([]complex128, len(r.Y))
		for i := range r.Y {
			amp, ph := float64(r.Y[i]), float64(r.X[i])
			z[i] = complex(amp*math.Cos(ph), amp*math.Sin(ph))
		}
	default:
		return nil, fmt.Errorf("ifft: %w", ErrNotSpectral)
	}

	z = inverseFFT(z)

	// Spectra produced by other tools carry no nsnpts/sb/sdelta
	// bookkeeping, just sentinels; fall back to the spectral header
	// instead of trusting them.
	npts := int(r.Nsnpts)
	if npts <= 0 || npts > int(r.Npts) {
		npts = int(r.Npts)
	}
	sdelta := r.Sdelta
	if !floatDefined(sdelta) || sdelta <= 0 {
		sdelta = 1 / (r.Delta * float32(r.Npts))
	}
	b := r.Sb
	if !floatDefined(b) {
		b = 0
	}
	factor := 1 / float64(sdelta)

	s := New()
	s.CopyHeader(r)
	s.Y = make([]float32, npts)
	for i := range s.Y {
		s.Y[i] = float32(real(z[i]) * factor)
	}
	s.X = nil
	s.Scale = 1 / (sdelta * float32(r.Npts))
	s.Npts = int32(npts)
	s.B = b
	s.Delta = sdelta
	s.Iftype = int32(TypeTime)
	s.Leven = 1
	s.Extrema()
	return s, nil
}

// ToAmpPhase converts a real/imaginary spectrum to amplitude/phase in
// place. It is a no-op on a record already in amplitude/phase form and an
// error on non-spectral data.
func (r *Record) ToAmpPhase() error {
	if err := r.requireSpectral(); err != nil {
		return err
	}
	if !r.IsRealImag() {
		return nil
	}
	for i := range r.Y {
		re, im := float64(r.Y[i]), float64(r.X[i])
		r.Y[i] = float32(math.Hypot(re, im))
		r.X[i] = float32(math.Atan2(im, re))
	}
	r.Iftype = int32(TypeAmpPhase)
	r.ExtremaAmp()
	return nil
}

// ToRealImag converts an amplitude/phase spectrum to real/imaginary in
// place. It is a no-op on a record already in real/imaginary form and an
// error on non-spectral data.
func (r *Record) ToRealImag() error {
	if err := r.requireSpectral(); err != nil {
		return err
	}
	if !r.IsAmpPhase() {
		return nil
	}
	for i := range r.Y {
		amp, ph := float64(r.Y[i]), float64(r.X[i])
		r.Y[i] = float32(amp * math.Cos(ph))
		r.X[i] = float32(amp * math.Sin(ph))
	}
	r.Iftype = int32(TypeRealImag)
	r.ExtremaAmp()
	return nil
}

// MulOmega multiplies each spectral bin by jω, the frequency-domain
// equivalent of time differentiation. Bins 0..npts/2-1 get the factor
// directly (the DC bin becomes zero) and the mirror bins npts-i receive
// the conjugate so Hermitian symmetry, and with it a real inverse
// transform, is preserved. The Nyquist bin is left untouched.
func (r *Record) MulOmega() error {
	if err := r.requireSpectral(); err != nil {
		return fmt.Errorf("mul_omega: %w", err)
	}
	n := int(r.Npts)
	nf := n / 2
	dw := 2 * math.Pi * float64(r.Delta)
	polar := r.IsAmpPhase()

	for i := 0; i < nf; i++ {
		var z complex128
		if polar {
			z = cmplx.Rect(float64(r.Y[i]), float64(r.X[i]))
		} else {
			z = complex(float64(r.Y[i]), float64(r.X[i]))
		}
		z *= complex(0, dw*float64(i))
		if polar {
			r.Y[i] = float32(cmplx.Abs(z))
			r.X[i] = float32(cmplx.Phase(z))
		} else {
			r.Y[i] = float32(real(z))
			r.X[i] = float32(imag(z))
		}
		if i == 0 {
			continue
		}
		k := n - i
		if polar {
			r.Y[k] = float32(cmplx.Abs(z))
			r.X[k] = float32(-cmplx.Phase(z))
		} else {
			r.Y[k] = float32(real(z))
			r.X[k] = float32(-imag(z))
		}
	}
	return nil
}

// DivOmega would divide each spectral bin by jω (time integration in the
// frequency domain), but the handling of the singular DC bin is not
// settled; it returns ErrUnimplemented.
func (r *Record) DivOmega() error {
	if err := r.requireSpectral(); err != nil {
		return fmt.Errorf("div_omega: %w", err)
	}
	return fmt.Errorf("div_omega: %w", ErrUnimplemented)
}

// Analytic computes the analytic signal of a time-domain record by the
// spectral step-function method: forward transform, double the positive
// frequencies, zero the negative ones, inverse transform. It returns the
// real part (the input, reconstructed) and the imaginary part (the
// Hilbert transform), both trimmed to the original length.
func (r *Record) Analytic() (*Record, *Record, error) {
	if err := r.requireTime(); err != nil {
		return nil, nil, fmt.Errorf("analytic: %w", err)
	}

	z := forwardFFT(r.Y, len(r.Y))
	n := len(z)
	if n%2 == 0 {
		m := n / 2
		for i := 1; i < m; i++ {
			z[i] *= 2
		}
		for i := m + 1; i < n; i++ {
			z[i] = 0
		}
	} else {
		m := (n + 1) / 2
		for i := 1; i < m; i++ {
			z[i] *= 2
		}
		for i := m; i < n; i++ {
			z[i] = 0
		}
	}
	z = inverseFFT(z)

	re := New()
	re.CopyHeader(r)
	im := New()
	im.CopyHeader(r)
	npts := int(r.Npts)
	re.Y = make([]float32, npts)
	im.Y = make([]float32, npts)
	for i := 0; i < npts; i++ {
		re.Y[i] = float32(real(z[i]))
		im.Y[i] = float32(imag(z[i]))
	}
	re.ExtremaAmp()
	im.ExtremaAmp()
	return re, im, nil
}

// Hilbert returns the Hilbert transform of a time-domain record.
func (r *Record) Hilbert() (*Record, error) {
	_, h, err := r.Analytic()
	return h, err
}

// Envelope returns the amplitude envelope, the per-sample magnitude of
// the analytic signal.
func (r *Record) Envelope() (*Record, error) {
	re, im, err := r.Analytic()
	if err != nil {
		return nil, err
	}
	s := r.Clone()
	for i := range s.Y {
		s.Y[i] = float32(math.Hypot(float64(re.Y[i]), float64(im.Y[i])))
	}
	s.Extrema()
	return s, nil
}

// convolveFFT computes the full linear convolution of a and b through the
// frequency domain: both inputs are zero padded to len(a)+len(b)-1,
// multiplied bin by bin and transformed back.
func convolveFFT(a, b []float32) []float32 {
	n := len(a) + len(b) - 1
	fft := fourier.NewCmplxFFT(n)

	af := fft.Coefficients(nil, realToComplex(a, n))
	bf := fft.Coefficients(nil, realToComplex(b, n))

	z := make([]complex128, n)
	c128.Mul(z, af, bf)
	z = fft.Sequence(nil, z)

	out := make([]float64, n)
	for i := range z {
		out[i] = real(z[i])
	}
	f64.Scale(out, out, 1/float64(n))

	res := make([]float32, n)
	for i, v := range out {
		res[i] = float32(v)
	}
	return res
}

func realToComplex(y []float32, n int) []complex128 {
	z := make([]complex128, n)
	for i, v := range y {
		z[i] = complex(float64(v), 0)
	}
	return z
}

// Convolve returns the linear convolution of two time-domain records. The
// result inherits b's header and time reference and has
// a.npts+b.npts-1 samples.
func Convolve(a, b *Record) (*Record, error) {
	if err := a.requireTime(); err != nil {
		return nil, fmt.Errorf("convolve: %w", err)
	}
	if err := b.requireTime(); err != nil {
		return nil, fmt.Errorf("convolve: %w", err)
	}

	y := convolveFFT(a.Y, b.Y)
	s := New()
	s.CopyHeader(b)
	s.Npts = int32(len(y))
	s.Y = y
	s.Iftype = int32(TypeTime)
	s.Leven = 1
	s.Extrema()
	return s, nil
}

// Correlate returns the cross correlation of two time-domain records,
// computed as the convolution of the time-reversed a with b. The result
// inherits a's header; its begin time (1-a.npts)*b.delta + b.b - a.b
// places zero lag where the records' time axes align.
func Correlate(a, b *Record) (*Record, error) {
	if err := a.requireTime(); err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}
	if err := b.requireTime(); err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}

	ar := make([]float32, len(a.Y))
	for i, v := range a.Y {
		ar[len(ar)-1-i] = v
	}

	y := convolveFFT(ar, b.Y)
	s := New()
	s.CopyHeader(a)
	s.Npts = int32(len(y))
	s.Y = y
	s.Iftype = int32(TypeTime)
	s.Leven = 1
	s.B = float32(1-a.Npts)*b.Delta + b.B - a.B
	s.Extrema()
	return s, nil
}
