// Package testutil builds synthetic BSXScript containers for tests.
package testutil

import (
	"encoding/binary"

	"github.com/joshuapare/bsxkit/internal/format"
)

// Builder describes a synthetic container. Build lays it out the way the
// engine's own files are laid out: header, code block, opaque trailer, then
// the character-name and message tables, each region 16-byte aligned.
type Builder struct {
	// Version selects the signature (0-3 for "BSXScript 3.0".."3.3").
	Version int
	Code    []byte
	// Opaque bytes placed between the code block and the string tables.
	Opaque   []byte
	Names    []string
	Messages []string
	// CountFlags is OR-ed into the low bits of both packed count fields.
	CountFlags uint32
}

// Sample returns the two-string container used across package tests: one
// character name "Alice" and one message "Hello", referenced by a single
// subtype-1 display-message instruction.
func Sample() *Builder {
	return &Builder{
		Version:  0,
		Code:     Concat(Ins(0x00, 1), MsgIns(1, 0, 0), Ins(0x0A, 1)),
		Names:    []string{"Alice"},
		Messages: []string{"Hello"},
	}
}

// Build renders the container bytes.
func (b *Builder) Build() []byte {
	out := make([]byte, format.HeaderSize)
	copy(out, format.Signatures[b.Version])

	// Opaque size fields and unrelated sections, so tests can check they
	// survive a rebuild untouched.
	for i, off := range format.SizeFieldOffsets {
		binary.LittleEndian.PutUint32(out[off:], 0x1000+uint32(i))
	}
	for s := 0; s < format.CharNameSection; s++ {
		base := format.SectionBase + s*format.SectionStride
		binary.LittleEndian.PutUint32(out[base:], 0xC0DE0000+uint32(s))
	}

	out = pad16(out)
	codeOff := len(out)
	out = append(out, b.Code...)
	out = append(out, b.Opaque...)
	out = pad16(out)

	nameList, nameBlock := encodeTable(b.Names)
	msgList, msgBlock := encodeTable(b.Messages)

	nameListOff := len(out)
	out = append(out, nameList...)
	out = pad16(out)
	nameBlockOff := len(out)
	out = append(out, nameBlock...)
	out = pad16(out)
	msgListOff := len(out)
	out = append(out, msgList...)
	out = pad16(out)
	msgBlockOff := len(out)
	out = append(out, msgBlock...)

	put := func(off, v int) { binary.LittleEndian.PutUint32(out[off:], uint32(v)) }
	put(format.CodeBlockOffsetField, codeOff)
	put(format.CodeBlockSizeField, len(b.Code))
	put(format.CharNameListOffsetField, nameListOff)
	binary.LittleEndian.PutUint32(out[format.CharNameCountField:], uint32(len(b.Names))<<format.SectionCountShift|b.CountFlags)
	put(format.CharNameBlockOffsetField, nameBlockOff)
	put(format.MessageListOffsetField, msgListOff)
	binary.LittleEndian.PutUint32(out[format.MessageCountField:], uint32(len(b.Messages))<<format.SectionCountShift|b.CountFlags)
	put(format.MessageBlockOffsetField, msgBlockOff)
	return out
}

func encodeTable(strs []string) (list, block []byte) {
	for _, s := range strs {
		list = binary.LittleEndian.AppendUint32(list, uint32(len(block)/format.CodeUnitSize))
		enc, err := format.EncodeCString(s)
		if err != nil {
			panic(err)
		}
		block = append(block, enc...)
	}
	return list, block
}

func pad16(b []byte) []byte {
	for len(b)%format.BlockAlignment != 0 {
		b = append(b, 0)
	}
	return b
}

// Ins returns opcode c followed by size-1 zero operand bytes.
func Ins(c byte, size int) []byte {
	b := make([]byte, size)
	b[0] = c
	return b
}

// MsgIns builds a display-message instruction of subtype 0 or 1.
func MsgIns(subtype byte, msgID, charID int32) []byte {
	b := []byte{0x1D, subtype}
	b = binary.LittleEndian.AppendUint32(b, uint32(msgID))
	if subtype >= 1 {
		b = binary.LittleEndian.AppendUint32(b, uint32(charID))
	}
	return b
}

// Concat joins instruction fragments into one code block.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
