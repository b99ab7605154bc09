package sac

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// encodeString lays v out in a field of the given width: trimmed of its
// padding, blank padded back to width, truncated if longer. A blank value
// is written as the undefined sentinel.
func encodeString(v string, width int) []byte {
	v = strings.TrimRight(v, " \x00")
	if strings.TrimSpace(v) == "" {
		v = undefString(width)
	}
	out := make([]byte, width)
	for i := range out {
		out[i] = ' '
	}
	copy(out, v)
	return out
}

// Write encodes the record to w in its byte order (see SetSwapped).
//
// Write panics when npts disagrees with the data length: the header and
// data cannot have diverged without a contract violation by the caller,
// and writing the file anyway would corrupt it silently.
func (r *Record) Write(w io.Writer) error {
	npts := int(r.Npts)
	if npts != len(r.Y) {
		panic(fmt.Sprintf("sac: inconsistent data: npts %d != data length %d", npts, len(r.Y)))
	}
	if r.Ncomps() == 2 && npts != len(r.X) {
		panic(fmt.Sprintf("sac: inconsistent data: npts %d != second component length %d", npts, len(r.X)))
	}
	if r.Nvhdr < 1 || r.Nvhdr > 10 {
		return fmt.Errorf("%w: %d", ErrUnknownFileVersion, r.Nvhdr)
	}

	order := byteOrder(r.swap)
	buf := make([]byte, headerSize)
	off := 0
	for _, f := range r.floatFields() {
		order.PutUint32(buf[off:], math.Float32bits(*f))
		off += 4
	}
	for _, f := range r.intFields() {
		order.PutUint32(buf[off:], uint32(*f))
		off += 4
	}
	for _, f := range r.stringFields() {
		copy(buf[off:], encodeString(*f.p, f.width))
		off += f.width
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := writeComponent(w, order, r.Y); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	if r.Ncomps() == 2 {
		if err := writeComponent(w, order, r.X); err != nil {
			return fmt.Errorf("writing second component: %w", err)
		}
	}
	return nil
}

func writeComponent(w io.Writer, order binary.ByteOrder, data []float32) error {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		order.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	_, err := w.Write(buf)
	return err
}

// WriteFile writes the record to path, creating or truncating it.
func (r *Record) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := r.Write(bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
