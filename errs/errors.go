// Package errs defines the sentinel errors shared across timerle packages.
//
// All errors are plain sentinels created with errors.New. Callers add context
// by wrapping with fmt.Errorf("...: %w", err), so errors.Is keeps working
// across package boundaries.
package errs

import "errors"

var (
	// ErrInvalidInputLength is returned when a timestamp sequence is too short
	// to estimate a reference sampling interval (fewer than 2 samples).
	ErrInvalidInputLength = errors.New("timestamp sequence must contain at least 2 samples")

	// ErrMalformedEncoding is returned when a run-length encoding violates its
	// structural invariants: parallel arrays of unequal length, a run length
	// below 1, or a single-sample run whose start and end times differ.
	ErrMalformedEncoding = errors.New("malformed run-length encoding")

	// ErrInvalidHeaderSize is returned when a blob header is truncated.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when a blob does not carry the
	// run-length blob magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType is returned when a blob flag carries an
	// unknown compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidTimeFormat is returned when a blob flag carries an unknown
	// time format.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidReservedBits is returned when a blob flag has reserved
	// option bits set; those bits must be zero in the current format
	// version.
	ErrInvalidReservedBits = errors.New("reserved option bits must be zero")

	// ErrChecksumMismatch is returned when the stored payload checksum does
	// not match the payload bytes.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrPayloadTruncated is returned when a blob payload ends before all
	// declared runs have been decoded.
	ErrPayloadTruncated = errors.New("payload truncated")
)
