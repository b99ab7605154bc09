package sac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	r := New()

	assert.Equal(t, int32(6), r.Nvhdr)
	assert.Equal(t, TypeTime, r.FileType())
	assert.Equal(t, int32(1), r.Lovrok)
	assert.Equal(t, int32(1), r.Lcalda)
	assert.Equal(t, int32(0), r.Lpspol)
	assert.Equal(t, int32(0), r.Npts)
	assert.Empty(t, r.Y)

	// Everything else carries the undefined sentinels.
	assert.Equal(t, float32(Undefined), r.Delta)
	assert.Equal(t, float32(Undefined), r.B)
	assert.Equal(t, Undefined, r.Nzyear)
	assert.Equal(t, undefString(stringWidth), r.Kstnm)
	assert.Equal(t, undefString(eventNameWidth), r.Kevnm)
}

func TestFromAmpExtrema(t *testing.T) {
	r := FromAmp([]float32{0, -1, 2}, 0.0, 1.0)

	assert.True(t, r.IsTime())
	assert.True(t, r.EvenlySpaced())
	assert.Equal(t, int32(3), r.Npts)
	assert.Equal(t, float32(-1), r.Depmin)
	assert.Equal(t, float32(2), r.Depmax)
	assert.InDelta(t, 1.0/3.0, float64(r.Depmen), 1e-6)
	assert.Equal(t, float32(0), r.B)
	assert.Equal(t, float32(2), r.E)
}

func TestWithNewData(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3, 4}, 10.0, 0.5)
	s := r.WithNewData([]float32{0, 1, 0})

	assert.Equal(t, int32(3), s.Npts)
	assert.Equal(t, float32(0), s.Depmin)
	assert.Equal(t, float32(1), s.Depmax)
	assert.Equal(t, float32(10), s.B)
	assert.InDelta(t, 11.0, float64(s.E), 1e-6)

	// Source record is untouched.
	assert.Equal(t, int32(4), r.Npts)
	assert.Equal(t, float32(4), r.Depmax)
}

func TestCloneIsDeep(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3}, 0.0, 1.0)
	s := r.Clone()
	s.Y[0] = 99

	assert.Equal(t, float32(1), r.Y[0])
}

func TestNcomps(t *testing.T) {
	tests := []struct {
		name  string
		ftype FileType
		leven int32
		want  int
	}{
		{"time even", TypeTime, 1, 1},
		{"time uneven", TypeTime, 0, 2},
		{"xy even", TypeXY, 1, 1},
		{"xy uneven", TypeXY, 0, 2},
		{"real imag", TypeRealImag, 1, 2},
		{"amp phase", TypeAmpPhase, 1, 2},
		{"xyz", TypeXYZ, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.SetFileType(tt.ftype)
			r.Leven = tt.leven
			assert.Equal(t, tt.want, r.Ncomps())
		})
	}
}

func TestUnevenCalcBE(t *testing.T) {
	r := New()
	r.SetFileType(TypeTime)
	r.Leven = 0
	r.Npts = 3
	r.Y = []float32{5, 6, 7}
	r.X = []float32{0.5, 0.1, 2.5}
	r.Extrema()

	assert.Equal(t, float32(0.1), r.B)
	assert.Equal(t, float32(2.5), r.E)
}

func TestEqualTolerance(t *testing.T) {
	a := FromAmp([]float32{1, 2, 3}, 0.0, 1.0)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Y[1] += 5e-6
	assert.True(t, a.Equal(b), "within tolerance")

	b.Y[1] += 1
	assert.False(t, a.Equal(b))

	c := a.Clone()
	c.Nzyear = 1999
	assert.False(t, a.Equal(c), "ints compare exactly")

	d := a.Clone()
	d.Kstnm = "OTHER   "
	assert.False(t, a.Equal(d), "strings compare exactly")
}

func TestIsFinite(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3}, 0.0, 1.0)
	assert.True(t, r.IsFinite())
	require.NoError(t, r.CheckFinite())

	r.Y[1] = float32(math.NaN())
	assert.False(t, r.IsFinite())
	assert.ErrorIs(t, r.CheckFinite(), ErrNaN)
}
