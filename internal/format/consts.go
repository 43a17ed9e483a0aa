// Package format houses low-level decoders for the BSXScript container
// format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

// Signatures accepted at offset 0x00. Each is a 16-byte, null padded ASCII
// string. All four versions share the same layout.
var Signatures = [][]byte{
	[]byte("BSXScript 3.0\x00\x00\x00"),
	[]byte("BSXScript 3.1\x00\x00\x00"),
	[]byte("BSXScript 3.2\x00\x00\x00"),
	[]byte("BSXScript 3.3\x00\x00\x00"),
}

const (
	// SignatureSize is the length of the signature field at offset 0x00.
	SignatureSize = 16

	// HeaderSize is the number of bytes covered by the decoded header. The
	// header ends right after the message block base at 0xA0.
	HeaderSize = 0xA4
)

// ============================================================================
// Header field offsets
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x000   16   Signature
//	 0x010   4    Opaque size field 0
//	 0x014   4    Opaque size field 1
//	 0x018   4    Opaque size field 2
//	 0x01C   4    Opaque size field 4
//	 0x020   4    Opaque size field 5
//	 0x024   4    Opaque size field 6
//	 0x028   4    Opaque size field 7
//	 0x02C   4    Code block offset
//	 0x030   4    Code block size
//	 0x034   4    Opaque size field 3
//	 0x038   16   Section 0 (list offset, packed count, block base, reserved)
//	 ...
//	 0x088   16   Section 5: character names
//	 0x098   12   Section 6: messages (reserved slot not part of the header)
const (
	CodeBlockOffsetField = 0x2C
	CodeBlockSizeField   = 0x30

	// SectionBase is the offset of the first section descriptor.
	SectionBase = 0x38
	// SectionStride is the distance between section descriptors.
	SectionStride = 0x10
	// SectionCount is the number of section descriptors in the header.
	SectionCount = 7

	// Field offsets inside a section descriptor.
	SectionListOffset  = 0x00
	SectionCountOffset = 0x04
	SectionBlockOffset = 0x08

	// CharNameSection and MessageSection index the two string tables.
	CharNameSection = 5
	MessageSection  = 6

	CharNameListOffsetField  = SectionBase + CharNameSection*SectionStride + SectionListOffset  // 0x88
	CharNameCountField       = SectionBase + CharNameSection*SectionStride + SectionCountOffset // 0x8C
	CharNameBlockOffsetField = SectionBase + CharNameSection*SectionStride + SectionBlockOffset // 0x90
	MessageListOffsetField   = SectionBase + MessageSection*SectionStride + SectionListOffset   // 0x98
	MessageCountField        = SectionBase + MessageSection*SectionStride + SectionCountOffset  // 0x9C
	MessageBlockOffsetField  = SectionBase + MessageSection*SectionStride + SectionBlockOffset  // 0xA0
)

// SizeFieldOffsets lists the opaque size fields that precede the sections, in
// the order the engine indexes them (note field 3 lives after the code block).
var SizeFieldOffsets = [...]int{0x10, 0x14, 0x18, 0x34, 0x1C, 0x20, 0x24, 0x28}

// Count fields reuse their low bits for flags. The element count is the raw
// value shifted right by the section's shift.
const (
	// Section0CountShift applies to section 0, whose entries are 8 bytes wide.
	Section0CountShift = 3
	// SectionCountShift applies to sections 1 through 6 (4-byte entries).
	SectionCountShift = 2
)

// CountShift returns the right shift that turns a section's raw count field
// into an element count.
func CountShift(section int) uint {
	if section == 0 {
		return Section0CountShift
	}
	return SectionCountShift
}

const (
	// OffsetEntrySize is the width of one offset list entry.
	OffsetEntrySize = 4

	// CodeUnitSize is the width of one UTF-16 code unit. Offset lists store
	// string positions in code units, not bytes.
	CodeUnitSize = 2

	// BlockAlignment is the boundary every rebuilt table region starts on.
	BlockAlignment = 16
)
