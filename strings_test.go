package sac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFields(t *testing.T) {
	r := New()
	require.NoError(t, r.SetString(Network, "IU"))

	got, err := r.String(Network)
	require.NoError(t, err)
	assert.Equal(t, "IU", got)

	// Location aliases the hole field, Channel the component field.
	require.NoError(t, r.SetString(Location, "00"))
	assert.Equal(t, "00", r.Khole)
	require.NoError(t, r.SetString(Channel, "BHZ"))
	assert.Equal(t, "BHZ", r.Kcmpnm)
}

func TestStringBadKey(t *testing.T) {
	r := New()
	_, err := r.String(StringField(999))
	assert.ErrorIs(t, err, ErrBadKey)
	assert.ErrorIs(t, r.SetString(StringField(999), "x"), ErrBadKey)
}

func TestNSLC(t *testing.T) {
	r := New()
	require.NoError(t, r.SetString(Network, "CI"))
	require.NoError(t, r.SetString(Station, "PAS"))
	require.NoError(t, r.SetString(Location, ""))
	require.NoError(t, r.SetString(Channel, "BHZ"))

	assert.Equal(t, "CI.PAS..BHZ", r.NSLC())
}

func TestNSLCUndefined(t *testing.T) {
	assert.Equal(t, "...", New().NSLC())
}

func TestReferenceTime(t *testing.T) {
	r := New()
	_, err := r.Time()
	assert.ErrorIs(t, err, ErrNotTime)

	when := time.Date(1984, time.January, 29, 15, 12, 59, 456*int(time.Millisecond), time.UTC)
	r.SetTime(when)

	assert.Equal(t, int32(1984), r.Nzyear)
	assert.Equal(t, int32(29), r.Nzjday)
	assert.Equal(t, int32(456), r.Nzmsec)

	got, err := r.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(when))
}

func TestReferenceTimeDayOfYear(t *testing.T) {
	// Day 88 of 1981 is March 29.
	r := New()
	r.Nzyear, r.Nzjday = 1981, 88
	r.Nzhour, r.Nzmin, r.Nzsec, r.Nzmsec = 10, 38, 14, 0

	got, err := r.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1981, time.March, 29, 10, 38, 14, 0, time.UTC), got)
}

func TestDateTime(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3}, 1.5, 1.0)
	when := time.Date(2001, time.June, 1, 0, 0, 0, 0, time.UTC)
	r.SetTime(when)

	bt, err := r.DateTime("b")
	require.NoError(t, err)
	assert.True(t, bt.Equal(when.Add(1500*time.Millisecond)))

	et, err := r.DateTime("e")
	require.NoError(t, err)
	assert.True(t, et.Equal(when.Add(3500*time.Millisecond)))

	_, err = r.DateTime("t9")
	assert.ErrorIs(t, err, ErrNotTime, "undefined mark")

	_, err = r.DateTime("bogus")
	assert.ErrorIs(t, err, ErrBadKey)
}
