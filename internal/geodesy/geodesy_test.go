package geodesy

import (
	"math"
	"testing"
)

func TestInverseKnownGeodesic(t *testing.T) {
	// 48N 125W to 48N 120W, cross-checked against GeographicLib.
	got := Inverse(48.0, -125.0, 48.0, -120.0)

	if math.Abs(got.DistanceKm-373.06274) > 0.05 {
		t.Errorf("DistanceKm = %v, want ~373.06", got.DistanceKm)
	}
	if math.Abs(got.ArcDegrees-3.3574646) > 1e-3 {
		t.Errorf("ArcDegrees = %v, want ~3.3575", got.ArcDegrees)
	}
	if math.Abs(got.Azimuth-88.14721) > 0.01 {
		t.Errorf("Azimuth = %v, want ~88.147", got.Azimuth)
	}
	if math.Abs(got.BackAzimuth-271.85278) > 0.01 {
		t.Errorf("BackAzimuth = %v, want ~271.853", got.BackAzimuth)
	}
}

func TestInverseEquator(t *testing.T) {
	// One degree of longitude along the equator.
	got := Inverse(0, 0, 0, 1)

	if math.Abs(got.DistanceKm-111.3195) > 0.01 {
		t.Errorf("DistanceKm = %v, want ~111.32", got.DistanceKm)
	}
	if math.Abs(got.Azimuth-90) > 1e-6 {
		t.Errorf("Azimuth = %v, want 90", got.Azimuth)
	}
	if math.Abs(got.BackAzimuth-270) > 1e-6 {
		t.Errorf("BackAzimuth = %v, want 270", got.BackAzimuth)
	}
}

func TestInverseMeridian(t *testing.T) {
	// One degree of latitude along a meridian, near the equator where a
	// degree of arc is shortest on an oblate ellipsoid.
	got := Inverse(0, 10, 1, 10)

	if math.Abs(got.DistanceKm-110.5743) > 0.01 {
		t.Errorf("DistanceKm = %v, want ~110.57", got.DistanceKm)
	}
	if math.Abs(got.Azimuth-0) > 1e-6 {
		t.Errorf("Azimuth = %v, want 0", got.Azimuth)
	}
}

func TestInverseCoincident(t *testing.T) {
	got := Inverse(10, 20, 10, 20)
	if got.DistanceKm != 0 {
		t.Errorf("DistanceKm = %v, want 0", got.DistanceKm)
	}
}

func TestInverseSymmetry(t *testing.T) {
	a := Inverse(35.6, 139.7, 37.8, -122.4)
	b := Inverse(37.8, -122.4, 35.6, 139.7)

	if math.Abs(a.DistanceKm-b.DistanceKm) > 1e-6 {
		t.Errorf("distance not symmetric: %v vs %v", a.DistanceKm, b.DistanceKm)
	}
	// The forward azimuth one way is the back azimuth the other way.
	if math.Abs(a.Azimuth-math.Mod(b.BackAzimuth, 360)) > 1e-6 {
		t.Errorf("azimuth %v does not match reverse back azimuth %v", a.Azimuth, b.BackAzimuth)
	}
}
