package sac

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf8"
)

const (
	headerSize = 632 // 70 floats + 40 ints + 192 string bytes

	// Byte offset of the header-version field, used to probe the byte
	// order: 70 floats plus the 6 reference-time integers before nvhdr.
	versionOffset = 70*4 + 6*4
)

var nativeIsLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1

// nonNativeOrder returns the byte order opposite to the host's.
func nonNativeOrder() binary.ByteOrder {
	if nativeIsLittle {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func byteOrder(swap bool) binary.ByteOrder {
	if swap {
		return nonNativeOrder()
	}
	return binary.NativeEndian
}

// detectSwap probes the header-version field at versionOffset. A value in
// (5, 8] read in native order means native byte order; otherwise the
// opposite order must yield a value in [0, 10], meaning a swapped file.
// Anything else is not a SAC stream. The reader is rewound on success.
func detectSwap(r io.ReadSeeker) (bool, error) {
	if _, err := r.Seek(versionOffset, io.SeekStart); err != nil {
		return false, fmt.Errorf("seeking header version: %w", err)
	}
	var raw [4]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return false, fmt.Errorf("reading header version: %w", err)
	}

	swap := false
	n := int32(binary.NativeEndian.Uint32(raw[:]))
	if n <= 5 || n > 8 {
		m := int32(nonNativeOrder().Uint32(raw[:]))
		if m < 0 || m > 10 {
			return false, fmt.Errorf("%w: header version %d", ErrUnknownFileType, n)
		}
		swap = true
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("rewinding stream: %w", err)
	}
	return swap, nil
}

// Read parses a SAC record from r, detecting the byte order from the
// header-version field. String header bytes are taken verbatim (they are
// never byte swapped) and must be valid UTF-8.
func Read(r io.ReadSeeker) (*Record, error) {
	s := New()

	swap, err := detectSwap(r)
	if err != nil {
		return nil, err
	}
	s.swap = swap
	order := byteOrder(swap)

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	off := 0
	for _, f := range s.floatFields() {
		*f = math.Float32frombits(order.Uint32(buf[off:]))
		off += 4
	}
	for _, f := range s.intFields() {
		*f = int32(order.Uint32(buf[off:]))
		off += 4
	}
	for _, f := range s.stringFields() {
		raw := buf[off : off+f.width]
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("header field %s: invalid UTF-8 %q", f.name, raw)
		}
		*f.p = string(raw)
		off += f.width
	}

	if s.Npts < 0 {
		return nil, fmt.Errorf("invalid npts %d", s.Npts)
	}
	s.Y, err = readComponent(r, order, int(s.Npts))
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	if s.Ncomps() == 2 {
		s.X, err = readComponent(r, order, int(s.Npts))
		if err != nil {
			return nil, fmt.Errorf("reading second component: %w", err)
		}
	}
	return s, nil
}

func readComponent(r io.Reader, order binary.ByteOrder, npts int) ([]float32, error) {
	buf := make([]byte, 4*npts)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	out := make([]float32, npts)
	for i := range out {
		out[i] = math.Float32frombits(order.Uint32(buf[4*i:]))
	}
	return out, nil
}

// ReadFile reads a SAC record from path.
func ReadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.file = path
	return s, nil
}
