package sac

import (
	"math"

	"github.com/tphakala/go-sac/internal/geodesy"
)

// RegionLookup, when set, maps a latitude/longitude to a Flinn-Engdahl
// geographic region number. The tables themselves live outside this
// package; UpdateRegions is a no-op while the hook is nil.
var RegionLookup func(lat, lon float64) (int32, error)

func floatDefined(v float32) bool { return v != float32(Undefined) }

// CalcDistAz reports whether distance and azimuth fields are recomputed
// when station or event coordinates change (header flag lcalda).
func (r *Record) CalcDistAz() bool { return r.Lcalda != 0 }

// SetCalcDistAz sets the lcalda flag.
func (r *Record) SetCalcDistAz(v bool) {
	if v {
		r.Lcalda = 1
	} else {
		r.Lcalda = 0
	}
}

// SetStationLocation sets the station latitude, longitude (degrees) and
// elevation (meters), then refreshes the region numbers and the
// distance/azimuth fields.
func (r *Record) SetStationLocation(lat, lon, elev float32) error {
	if math.Abs(float64(lat)) > 90 {
		return ErrBadLatitude
	}
	if math.Abs(float64(lon)) > 360 {
		return ErrBadLongitude
	}
	r.Stla = lat
	r.Stlo = lon
	r.Stel = elev
	r.UpdateRegions()
	r.ComputeDistAz()
	return nil
}

// SetEventLocation sets the event latitude, longitude (degrees) and depth
// (kilometers), then refreshes the region numbers and the
// distance/azimuth fields.
func (r *Record) SetEventLocation(lat, lon, depth float32) error {
	if math.Abs(float64(lat)) > 90 {
		return ErrBadLatitude
	}
	if math.Abs(float64(lon)) > 360 {
		return ErrBadLongitude
	}
	r.Evla = lat
	r.Evlo = lon
	r.Evdp = depth
	r.UpdateRegions()
	r.ComputeDistAz()
	return nil
}

// SetCmpAz sets the component azimuth in degrees clockwise from north.
// Values must lie in [-360, 360].
func (r *Record) SetCmpAz(az float32) error {
	if math.Abs(float64(az)) > 360 {
		return ErrBadAzimuth
	}
	r.Cmpaz = az
	return nil
}

// SetCmpInc sets the component incidence angle in degrees from vertical.
// Values must lie in [-180, 180].
func (r *Record) SetCmpInc(inc float32) error {
	if math.Abs(float64(inc)) > 180 {
		return ErrBadInclination
	}
	r.Cmpinc = inc
	return nil
}

// ComputeDistAz fills gcarc, dist, az and baz from the station and event
// coordinates. Nothing happens unless the lcalda flag is set and all four
// coordinates are defined. az is the event-to-station azimuth and baz the
// station-to-event azimuth, per the SAC convention.
func (r *Record) ComputeDistAz() {
	if !r.CalcDistAz() {
		return
	}
	if !floatDefined(r.Stla) || !floatDefined(r.Stlo) ||
		!floatDefined(r.Evla) || !floatDefined(r.Evlo) {
		return
	}
	g := geodesy.Inverse(float64(r.Evla), float64(r.Evlo),
		float64(r.Stla), float64(r.Stlo))
	r.Gcarc = float32(g.ArcDegrees)
	r.Dist = float32(g.DistanceKm)
	r.Az = float32(g.Azimuth)
	r.Baz = float32(g.BackAzimuth)
}

// UpdateRegions refreshes the station and event Flinn-Engdahl region
// numbers through the RegionLookup hook, for whichever coordinates are
// defined. Lookup failures leave the fields untouched.
func (r *Record) UpdateRegions() {
	if RegionLookup == nil {
		return
	}
	if floatDefined(r.Stla) && floatDefined(r.Stlo) {
		if n, err := RegionLookup(float64(r.Stla), float64(r.Stlo)); err == nil {
			r.Istreg = n
		}
	}
	if floatDefined(r.Evla) && floatDefined(r.Evlo) {
		if n, err := RegionLookup(float64(r.Evla), float64(r.Evlo)); err == nil {
			r.Ievreg = n
		}
	}
}
