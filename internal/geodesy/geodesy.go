// Package geodesy solves the inverse geodesic problem on the WGS-84
// ellipsoid, delegating to the GeographicLib port in tidwall/geodesic.
package geodesy

import (
	"math"

	"github.com/tidwall/geodesic"
)

// Result describes the geodesic from point 1 to point 2.
type Result struct {
	DistanceKm  float64 // geodesic length in kilometers
	ArcDegrees  float64 // arc length between the points in degrees
	Azimuth     float64 // forward azimuth at point 1, degrees [0, 360)
	BackAzimuth float64 // azimuth from point 2 back to point 1, degrees [0, 360)
}

func norm360(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Inverse computes the geodesic between two points given in degrees.
func Inverse(lat1, lon1, lat2, lon2 float64) Result {
	if lat1 == lat2 && lon1 == lon2 {
		return Result{}
	}
	var meters, azi1, azi2, m12, gm12, gm21, area float64
	arc := geodesic.WGS84.GenInverse(lat1, lon1, lat2, lon2,
		&meters, &azi1, &azi2, &m12, &gm12, &gm21, &area)
	return Result{
		DistanceKm:  meters / 1000,
		ArcDegrees:  arc,
		Azimuth:     norm360(azi1),
		BackAzimuth: norm360(azi2 + 180),
	}
}
