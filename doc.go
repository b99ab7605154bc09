// Package sac reads, writes, and transforms seismic waveform records stored
// in the SAC (Seismic Analysis Code) binary format: a fixed 632-byte header
// followed by one or two equal-length arrays of single-precision samples.
//
// Reference: http://ds.iris.edu/files/sac-manual/
//
// # Features
//
//   - Byte-order aware binary codec with exact round-trip behavior,
//     including the -12345 "undefined" sentinel conventions
//   - Forward/inverse FFT between time and spectral representations
//     (real/imaginary and amplitude/phase), backed by gonum's FFT kernel
//   - Analytic-signal construction for Hilbert transform and envelope
//   - Time-domain conditioning: taper, detrend, demean, smooth, window,
//     reverse, RMS, trapezoidal integration and finite differencing
//   - FFT-based convolution and correlation between records
//   - Butterworth filtering (lowpass, highpass, bandpass, bandreject)
//   - Signal generators (impulse, sine, triangle) for synthetic records
//
// # Quick Start
//
// Reading a file, conditioning it, and writing the result:
//
//	rec, err := sac.ReadFile("event.sac")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec, err = rec.RemoveTrend()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rec, err = rec.Taper(0.05, sac.TaperHanning)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := rec.WriteFile("event_conditioned.sac"); err != nil {
//	    log.Fatal(err)
//	}
//
// Synthetic records are built with FromAmp or the generators:
//
//	rec := sac.FromAmp([]float32{0, -1, 2}, 0.0, 1.0)
//
// # Data Model
//
// A Record owns a sample array Y and an optional second component X whose
// meaning depends on the file type: independent-variable values for
// unevenly sampled data, the imaginary part for real/imaginary spectra, or
// the phase for amplitude/phase spectra. Header fields hold the SAC
// undefined sentinels (-12345 for integers, -12345.0 for floats, "-12345"
// blank padded for strings) until set.
//
// The derived header fields depmin, depmax and depmen are recomputed by
// every operation that changes sample data; code that mutates Y directly
// must call Extrema afterwards. Records share no hidden state, so distinct
// records can be processed concurrently without coordination.
package sac
