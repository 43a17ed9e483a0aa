package script

import "errors"

var (
	// ErrBadReference indicates an instruction references an id outside its table.
	ErrBadReference = errors.New("script: string reference out of range")

	// ErrTooLarge indicates a rebuilt container would not fit 32-bit offsets.
	ErrTooLarge = errors.New("script: rebuilt container exceeds 32-bit offsets")

	// ErrClosed indicates the Script was used after Close.
	ErrClosed = errors.New("script: closed")
)
