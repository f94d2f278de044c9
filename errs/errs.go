// Package errs defines the sentinel errors returned by the b000 decoder.
//
// Callers match these with errors.Is; every returned error wraps one of these
// sentinels with fmt.Errorf("%w: ...") to add the offending field or offset.
package errs

import "errors"

// Header errors.
var (
	ErrFileTooSmall     = errors.New("header: file too small")
	ErrBadSignature     = errors.New("header: invalid file_signature")
	ErrBadEndianness    = errors.New("header: invalid endianness_flag")
	ErrBadReservedBytes = errors.New("header: reserved bytes not zero")
	ErrSectionOverlap   = errors.New("header: sections overlap or out of order")
	ErrMisalignedOffset = errors.New("header: section offset not 8-byte aligned")
)

// Section bounds errors.
var (
	ErrSectionBounds  = errors.New("section: offset+length exceeds buffer")
	ErrMissingPrelude = errors.New("section: mandatory prelude missing")
)

// Codec errors.
var (
	ErrUnsupportedCodec = errors.New("codec: unsupported codec id")
	ErrZstdFrame        = errors.New("codec: zstd frame decode failed")
)

// Column errors.
var (
	ErrColumnEOF       = errors.New("column: unexpected EOF")
	ErrCINotMonotonic  = errors.New("column: CI not monotonic nondecreasing")
	ErrCIBounds        = errors.New("column: CI[0] != 0 or CI[last] != meta_count")
	ErrValueIndexRange = errors.New("column: VI out of range")
	ErrStringBounds    = errors.New("column: string slice out of bounds")
)

// Trailing data and numeric errors.
var (
	ErrTrailingBytes  = errors.New("section: unexpected trailing bytes")
	ErrNumericOverflow = errors.New("synth: numeric value exceeds 2^53")
)
