package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bsxkit/internal/buf"
)

// Section is one decoded offset-list descriptor. ListOffset and BlockOffset
// are absolute byte offsets into the container; Count is the element count
// after the packed flag bits have been shifted away.
type Section struct {
	ListOffset  int
	RawCount    uint32
	Count       int
	BlockOffset int
}

// Header captures the BSXScript header fields. Offsets are relative to the
// start of the container; see the layout diagram in consts.go.
type Header struct {
	Signature  string
	SizeFields [len(SizeFieldOffsets)]uint32
	CodeOffset int
	CodeSize   int
	Sections   [SectionCount]Section
}

// CharNames returns the character-name section descriptor.
func (h Header) CharNames() Section { return h.Sections[CharNameSection] }

// Messages returns the message section descriptor.
func (h Header) Messages() Section { return h.Sections[MessageSection] }

// MatchSignature reports whether b begins with one of the accepted signatures.
func MatchSignature(b []byte) bool {
	if len(b) < SignatureSize {
		return false
	}
	for _, sig := range Signatures {
		if bytes.Equal(b[:SignatureSize], sig) {
			return true
		}
	}
	return false
}

// ParseHeader validates the signature and decodes the header fields.
func ParseHeader(b []byte) (Header, error) {
	if !MatchSignature(b) {
		return Header{}, fmt.Errorf("bsx header: %w", ErrInvalidFormat)
	}
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("bsx header: %w (need %d bytes, have %d)", ErrTruncated, HeaderSize, len(b))
	}

	var h Header
	h.Signature = string(bytes.TrimRight(b[:SignatureSize], "\x00"))
	for i, off := range SizeFieldOffsets {
		h.SizeFields[i] = buf.U32LE(b[off:])
	}
	h.CodeOffset = int(buf.I32LE(b[CodeBlockOffsetField:]))
	h.CodeSize = int(buf.I32LE(b[CodeBlockSizeField:]))

	for i := range h.Sections {
		base := SectionBase + i*SectionStride
		raw := buf.U32LE(b[base+SectionCountOffset:])
		h.Sections[i] = Section{
			ListOffset:  int(buf.I32LE(b[base+SectionListOffset:])),
			RawCount:    raw,
			Count:       int(int32(raw) >> CountShift(i)),
			BlockOffset: int(buf.I32LE(b[base+SectionBlockOffset:])),
		}
	}

	if h.CodeOffset < 0 || h.CodeSize < 0 {
		return Header{}, fmt.Errorf("bsx header: %w: code block %d+%d", ErrCorruptHeader, h.CodeOffset, h.CodeSize)
	}
	for _, idx := range []int{CharNameSection, MessageSection} {
		s := h.Sections[idx]
		if s.ListOffset < 0 || s.Count < 0 || s.BlockOffset < 0 {
			return Header{}, fmt.Errorf("bsx header: %w: section %d = %+v", ErrCorruptHeader, idx, s)
		}
	}
	return h, nil
}
