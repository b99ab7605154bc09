// Command sac2wav exports a SAC waveform as a 16-bit mono WAV file,
// typically sped up so seismic frequencies become audible.
//
// Usage:
//
//	sac2wav input.sac output.wav
//	sac2wav -speedup 200 input.sac output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	sac "github.com/tphakala/go-sac"
)

const (
	bitDepth  = 16
	maxInt16  = 32767.0
	pcmFormat = 1

	defaultSpeedup = 100.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	speedup := flag.Float64("speedup", defaultSpeedup, "Playback speedup factor")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.sac output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	rec, err := sac.ReadFile(args[0])
	if err != nil {
		return err
	}
	if !rec.IsTime() {
		return fmt.Errorf("%s: not a time-domain record", args[0])
	}
	if err := rec.CheckFinite(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	// Full-scale normalization keeps quiet traces audible.
	rec = rec.Normalize()

	rate := int(math.Round(*speedup / float64(rec.Delta)))
	if rate <= 0 {
		return fmt.Errorf("invalid sample rate from delta %g", rec.Delta)
	}
	if *verbose {
		log.Printf("Input: %s (%d samples, delta %g s)", args[0], rec.Npts, rec.Delta)
		log.Printf("Output: %s at %d Hz (%.0fx speedup)", args[1], rate, *speedup)
	}

	return writeWAV(args[1], rec.Y, rate)
}

func writeWAV(path string, samples []float32, rate int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(out, rate, bitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range samples {
		buf.Data[i] = int(math.Round(float64(v) * maxInt16))
	}

	if err := enc.Write(buf); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return out.Close()
}
