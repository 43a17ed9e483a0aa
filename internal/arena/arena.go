// Package arena provides an append-only byte arena used while regenerating
// container regions. Bytes are only ever added at the end; once frozen the
// arena hands out its contents and rejects further writes.
package arena

import (
	"encoding/binary"
	"errors"
)

// ErrFrozen is returned by writes after Freeze.
var ErrFrozen = errors.New("arena: frozen")

// Arena is a bump-pointer byte sequence. The zero value is ready to use.
type Arena struct {
	buf    []byte
	frozen bool
}

// New returns an arena with capacity preallocated.
func New(capacity int) *Arena {
	return &Arena{buf: make([]byte, 0, capacity)}
}

// Len returns the current write position.
func (a *Arena) Len() int { return len(a.buf) }

// Append copies p to the end of the arena and returns the offset it was
// written at.
func (a *Arena) Append(p []byte) (int, error) {
	if a.frozen {
		return 0, ErrFrozen
	}
	off := len(a.buf)
	a.buf = append(a.buf, p...)
	return off, nil
}

// AppendU32 appends v in little-endian order and returns its offset.
func (a *Arena) AppendU32(v uint32) (int, error) {
	if a.frozen {
		return 0, ErrFrozen
	}
	off := len(a.buf)
	a.buf = binary.LittleEndian.AppendUint32(a.buf, v)
	return off, nil
}

// Pad appends zero bytes until the length is a multiple of alignment (a power
// of two) and returns the new length.
func (a *Arena) Pad(alignment int) (int, error) {
	if a.frozen {
		return 0, ErrFrozen
	}
	n := (len(a.buf) + alignment - 1) & ^(alignment - 1)
	for len(a.buf) < n {
		a.buf = append(a.buf, 0)
	}
	return n, nil
}

// Freeze ends the write phase and returns the arena contents. The returned
// slice is owned by the caller; the arena keeps no reference to it.
func (a *Arena) Freeze() []byte {
	a.frozen = true
	out := a.buf
	a.buf = nil
	return out
}
