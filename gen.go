package sac

import (
	"fmt"
	"math"
)

func setGeneratorName(r *Record, name string) {
	r.Kevnm = fmt.Sprintf("%-16s", name)[:eventNameWidth]
}

// Impulse returns an n-sample record that is zero except for a unit spike
// at the center sample (n-1)/2.
func Impulse(n int, b, dt float64) *Record {
	y := make([]float32, n)
	y[(n-1)/2] = 1
	r := FromAmp(y, b, dt)
	setGeneratorName(r, "FUNCGEN: IMPULSE")
	return r
}

// Sine returns an n-sample sine wave of the given frequency (Hz) and
// phase (degrees). The phase is referenced to time zero, so the begin
// time b shifts the waveform accordingly.
func Sine(n int, b, dt, frequency, phase float64) *Record {
	phase0 := 2 * math.Pi * (frequency*b + phase/360)
	y := make([]float32, n)
	for i := range y {
		y[i] = float32(math.Sin(phase0 + 2*math.Pi*float64(i)*frequency*dt))
	}
	r := FromAmp(y, b, dt)
	setGeneratorName(r, "FUNCGEN: SINE")
	return r
}

// Triangle returns an isosceles triangle of the given half-width in
// seconds, starting at time zero and normalized to unit area.
func Triangle(halfWidth, dt float64) *Record {
	n := int(halfWidth*2/dt) + 1
	w := halfWidth * 2
	area := halfWidth * w / 2
	y := make([]float32, n)
	for i := range y {
		t := float64(i) * dt
		var v float64
		switch {
		case t <= halfWidth:
			v = t
		case t <= w:
			v = 2*halfWidth - t
		}
		y[i] = float32(v / area)
	}
	r := FromAmp(y, 0, dt)
	setGeneratorName(r, "FUNCGEN: TRIANGLE")
	return r
}

// TriangleFromMag returns a unit-area triangle whose duration follows the
// Wells and Coppersmith (1994) rupture-length scaling for the given
// magnitude, assuming a 2.86 km/s rupture velocity.
func TriangleFromMag(mag, dt float64) *Record {
	const (
		a  = 5.08
		b  = 1.16
		vr = 2.86 // km/s, 0.85 * Vs with Vs = 3.36 km/s
	)
	length := math.Pow(10, (mag-a)/b)
	return Triangle(length/vr, dt)
}
