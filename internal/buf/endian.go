// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// I32At reads a little-endian int32 at b[off:off+4]. ok is false when the
// four bytes are not all inside b.
func I32At(b []byte, off int) (v int32, ok bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(s)), true
}

// ByteAt returns b[off], with ok = false when off is outside b.
func ByteAt(b []byte, off int) (byte, bool) {
	if off < 0 || off >= len(b) {
		return 0, false
	}
	return b[off], true
}
