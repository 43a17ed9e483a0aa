package format

import "errors"

var (
	// ErrInvalidFormat indicates the signature is not one of the accepted BSXScript versions.
	ErrInvalidFormat = errors.New("format: not a valid BSXScript file")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrCorruptHeader indicates a header field holds an impossible value.
	ErrCorruptHeader = errors.New("format: corrupt header")
)
