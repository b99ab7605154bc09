package sac

import "errors"

// Sentinel errors returned by the package. Wrapped errors carry additional
// context; use errors.Is to classify them.
var (
	// ErrUnknownFileType is returned when the header-version probe fails in
	// both byte orders, meaning the stream is not a SAC file.
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrUnknownFileVersion is returned when a record carries a header
	// version outside the supported 1..10 range.
	ErrUnknownFileVersion = errors.New("unknown header version")

	// ErrNotSpectral is returned by spectral operations applied to
	// time-domain or general x-y data.
	ErrNotSpectral = errors.New("record is not spectral")

	// ErrNotTime is returned by time-domain operations applied to spectral
	// data, and by reference-time accessors when the zero time is unset.
	ErrNotTime = errors.New("record has no time-domain data")

	// ErrNaN is returned when an operation would produce or has encountered
	// a non-finite value.
	ErrNaN = errors.New("non-finite value")

	// ErrBadKey is returned for an unrecognized field selector.
	ErrBadKey = errors.New("unknown field key")

	// Coordinate validation errors.
	ErrBadLatitude    = errors.New("latitude out of range [-90, 90]")
	ErrBadLongitude   = errors.New("longitude out of range [-360, 360]")
	ErrBadAzimuth     = errors.New("azimuth out of range [-360, 360]")
	ErrBadInclination = errors.New("inclination out of range [-180, 180]")

	// ErrUnimplemented marks operations whose numeric policy is not yet
	// settled. See DivOmega.
	ErrUnimplemented = errors.New("operation not implemented")
)
