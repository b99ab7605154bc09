package sac

import "math"

// Header mirrors the 632-byte SAC binary header: 70 float32 fields, then
// 40 int32 fields, then 23 fixed-width ASCII fields, in strict file order.
// Unset fields hold the -12345 sentinels. The lowercase fields are unused
// slots of the format; they are carried so that files round-trip exactly.
type Header struct {
	Delta  float32 // sample spacing (s), or frequency spacing for spectra
	Depmin float32 // minimum of the dependent variable
	Depmax float32 // maximum of the dependent variable
	Scale  float32 // amplitude scale factor
	Odelta float32 // observed sample spacing
	B      float32 // begin value of the independent variable
	E      float32 // end value of the independent variable
	O      float32 // event origin time, relative to the reference time
	A      float32 // first arrival time
	fmt    float32 // internal
	T0     float32 // user-defined time picks t0..t9
	T1     float32
	T2     float32
	T3     float32
	T4     float32
	T5     float32
	T6     float32
	T7     float32
	T8     float32
	T9     float32
	F      float32 // end of event time
	Resp0  float32 // instrument response parameters
	Resp1  float32
	Resp2  float32
	Resp3  float32
	Resp4  float32
	Resp5  float32
	Resp6  float32
	Resp7  float32
	Resp8  float32
	Resp9  float32
	Stla   float32 // station latitude (degrees north)
	Stlo   float32 // station longitude (degrees east)
	Stel   float32 // station elevation (m)
	Stdp   float32 // station depth below surface (m)
	Evla   float32 // event latitude
	Evlo   float32 // event longitude
	Evel   float32 // event elevation
	Evdp   float32 // event depth below surface (km)
	Mag    float32 // event magnitude
	User0  float32 // user-defined values
	User1  float32
	User2  float32
	User3  float32
	User4  float32
	User5  float32
	User6  float32
	User7  float32
	User8  float32
	User9  float32
	Dist   float32 // station-event distance (km)
	Az     float32 // event-to-station azimuth (degrees)
	Baz    float32 // station-to-event azimuth (degrees)
	Gcarc  float32 // station-event great-circle arc (degrees)
	Sb     float32 // saved begin value, set by FFT
	Sdelta float32 // saved sample spacing, set by FFT
	Depmen float32 // mean of the dependent variable
	Cmpaz  float32 // component azimuth (degrees clockwise from north)
	Cmpinc float32 // component incidence angle (degrees from vertical)
	Xminimum float32
	Xmaximum float32
	Yminimum float32
	Ymaximum float32
	unused6  float32
	unused7  float32
	unused8  float32
	unused9  float32
	unused10 float32
	unused11 float32
	unused12 float32

	Nzyear int32 // reference time: year
	Nzjday int32 // reference time: day of year (1..366)
	Nzhour int32
	Nzmin  int32
	Nzsec  int32
	Nzmsec int32
	Nvhdr  int32 // header version
	Norid  int32 // origin id
	Nevid  int32 // event id
	Npts   int32 // number of samples
	Nsnpts int32 // saved npts, set by FFT
	Nwfid  int32 // waveform id
	Nxsize int32
	Nysize int32
	unused15 int32
	Iftype int32 // file type, see FileType
	Idep   int32 // dependent variable type, see DataType
	Iztype int32 // reference time equivalence, see ZeroTime
	unused16 int32
	Iinst  int32 // instrument type
	Istreg int32 // station geographic region
	Ievreg int32 // event geographic region
	Ievtyp int32 // event type, see EventType
	Iqual  int32 // data quality, see Quality
	Isynth int32 // synthetic data flag
	Imagtyp int32 // magnitude type, see MagnitudeType
	Imagsrc int32 // magnitude source, see MagnitudeSource
	unused19 int32
	unused20 int32
	unused21 int32
	unused22 int32
	unused23 int32
	unused24 int32
	unused25 int32
	unused26 int32
	Leven  int32 // true when data is evenly spaced
	Lpspol int32 // true when station polarity follows the positive convention
	Lovrok int32 // true when the file may be overwritten
	Lcalda int32 // true when dist/az/baz/gcarc are computed from coordinates
	unused27 int32

	Kstnm string // station name (8)
	Kevnm string // event name (16)
	Khole string // hole or location code (8)
	Ko    string // origin time label
	Ka    string // first arrival label
	Kt0   string // labels for t0..t9
	Kt1   string
	Kt2   string
	Kt3   string
	Kt4   string
	Kt5   string
	Kt6   string
	Kt7   string
	Kt8   string
	Kt9   string
	Kf    string // end of event label
	Kuser0 string
	Kuser1 string
	Kuser2 string
	Kcmpnm string // component or channel name
	Knetwk string // network name
	Kdatrd string // date the data was read
	Kinst  string // instrument name
}

// Record is a single SAC waveform: the header plus one or two data
// components. Y always holds the dependent variable. X is empty for evenly
// spaced time series; otherwise it holds the sample times (uneven data),
// the imaginary part (real/imaginary spectra) or the phase
// (amplitude/phase spectra).
type Record struct {
	Header

	Y []float32
	X []float32

	swap bool   // stored in the non-native byte order
	file string // origin path, when read from a file
}

// New returns a Record with every header field set to its undefined
// sentinel except the standard defaults: header version 6, file type Time,
// overwrite and compute-distance flags set, and zero samples.
func New() *Record {
	r := &Record{}
	for _, f := range r.floatFields() {
		*f = float32(Undefined)
	}
	for _, f := range r.intFields() {
		*f = Undefined
	}
	for _, f := range r.stringFields() {
		*f.p = undefString(f.width)
	}
	r.Nvhdr = 6
	r.Iftype = int32(TypeTime)
	r.Idep = int32(DataNone)
	r.Iztype = int32(ZeroTimeNone)
	r.Ievtyp = int32(EventNone)
	r.Npts = 0
	r.Lpspol = 0
	r.Lovrok = 1
	r.Lcalda = 1
	r.unused27 = 0
	return r
}

// FromAmp builds an evenly spaced time-series record from amplitude data,
// a begin time b and a sample spacing dt, with extrema computed.
func FromAmp(y []float32, b, dt float64) *Record {
	r := New()
	r.Npts = int32(len(y))
	r.Delta = float32(dt)
	r.B = float32(b)
	r.Y = y
	r.Iftype = int32(TypeTime)
	r.Leven = 1
	r.Extrema()
	return r
}

// WithNewData returns a copy of the record carrying y as its data, with
// npts, extrema and the derived end time updated.
func (r *Record) WithNewData(y []float32) *Record {
	s := r.Clone()
	s.Y = y
	s.Npts = int32(len(y))
	s.Extrema()
	return s
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	s := *r
	s.Y = append([]float32(nil), r.Y...)
	s.X = append([]float32(nil), r.X...)
	return &s
}

// CopyHeader copies all header fields and the byte-order flag from src,
// leaving the data components untouched.
func (r *Record) CopyHeader(src *Record) {
	r.Header = src.Header
	r.swap = src.swap
}

// FileType reports the record's file type code.
func (r *Record) FileType() FileType { return FileType(r.Iftype) }

// SetFileType sets the record's file type code.
func (r *Record) SetFileType(t FileType) { r.Iftype = int32(t) }

// EvenlySpaced reports whether the samples are evenly spaced.
func (r *Record) EvenlySpaced() bool { return r.Leven != 0 }

// IsTime reports whether the record is in a time or general x-y domain,
// as opposed to a spectral one.
func (r *Record) IsTime() bool {
	switch r.FileType() {
	case TypeTime, TypeXY, TypeXYZ:
		return true
	}
	return false
}

// IsSpectral reports whether the record holds spectral data.
func (r *Record) IsSpectral() bool {
	return r.IsRealImag() || r.IsAmpPhase()
}

// IsRealImag reports whether the record is a real/imaginary spectrum.
func (r *Record) IsRealImag() bool { return r.FileType() == TypeRealImag }

// IsAmpPhase reports whether the record is an amplitude/phase spectrum.
func (r *Record) IsAmpPhase() bool { return r.FileType() == TypeAmpPhase }

// Swapped reports whether the record came from (and will be written in)
// the non-native byte order.
func (r *Record) Swapped() bool { return r.swap }

// SetSwapped selects the byte order used by Write: false for native,
// true for the opposite order.
func (r *Record) SetSwapped(swap bool) { r.swap = swap }

// Filename reports the path the record was read from, if any.
func (r *Record) Filename() string { return r.file }

// Ncomps reports the number of data components for the current file type:
// 2 for spectra and unevenly spaced series, otherwise 1.
func (r *Record) Ncomps() int {
	switch r.FileType() {
	case TypeRealImag, TypeAmpPhase:
		return 2
	case TypeTime, TypeXY:
		if r.EvenlySpaced() {
			return 1
		}
		return 2
	default: // XYZ and unknown codes
		return 1
	}
}

// IsFinite reports whether all samples are finite.
func (r *Record) IsFinite() bool {
	for _, v := range r.Y {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// ExtremaAmp recomputes depmin, depmax and depmen from the current Y
// component. The mean is accumulated in float64.
func (r *Record) ExtremaAmp() {
	if len(r.Y) == 0 {
		return
	}
	vmin, vmax := r.Y[0], r.Y[0]
	var sum float64
	for _, v := range r.Y {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
		sum += float64(v)
	}
	r.Depmin = vmin
	r.Depmax = vmax
	r.Depmen = float32(sum / float64(r.Npts))
}

// Extrema recomputes depmin/depmax/depmen and the derived begin/end values.
//
//	File type      | e
//	---------------|---------------------------
//	time, xy even  | b + (npts-1)*delta
//	time, xy uneven| b = min(X), e = max(X)
//	spectral       | b + nfreq*delta (Nyquist)
//	xyz            | unchanged
func (r *Record) Extrema() {
	r.ExtremaAmp()
	r.calcBE()
}

func (r *Record) calcBE() {
	if r.EvenlySpaced() {
		switch r.FileType() {
		case TypeTime, TypeXY:
			r.E = r.B + r.Delta*float32(r.Npts-1)
		case TypeRealImag, TypeAmpPhase:
			nfreq := r.Npts / 2
			if r.Npts%2 != 0 {
				nfreq = (r.Npts - 1) / 2
			}
			r.E = r.B + r.Delta*float32(nfreq)
		}
		return
	}
	if len(r.X) > 0 {
		xmin, xmax := r.X[0], r.X[0]
		for _, x := range r.X {
			if x < xmin {
				xmin = x
			}
			if x > xmax {
				xmax = x
			}
		}
		r.B = xmin
		r.E = xmax
	}
}

func (r *Record) requireTime() error {
	if !r.IsTime() {
		return ErrNotTime
	}
	return nil
}

func (r *Record) requireSpectral() error {
	if !r.IsSpectral() {
		return ErrNotSpectral
	}
	return nil
}
