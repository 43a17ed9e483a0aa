package bytecode

import "encoding/binary"

func i32(v int32) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(v))
}

// fixedIns returns opcode c followed by size-1 zero operand bytes.
func fixedIns(c byte, size int) []byte {
	b := make([]byte, size)
	b[0] = c
	return b
}

// msgIns builds a display-message instruction. For subtypes above 1, n is the
// trailing element count stored at +10.
func msgIns(subtype byte, msgID, charID, n int32) []byte {
	b := []byte{OpDisplayMessage, subtype}
	b = append(b, i32(msgID)...)
	if subtype >= 1 {
		b = append(b, i32(charID)...)
	}
	if subtype >= 2 {
		b = append(b, i32(n)...)
		for len(b) < 6+4*int(subtype) {
			b = append(b, 0)
		}
		b = append(b, make([]byte, 4*int(n))...)
	}
	return b
}

// countedIns builds a 0x3E instruction with n trailing elements.
func countedIns(n int32) []byte {
	b := append([]byte{0x3E}, i32(n)...)
	return append(b, make([]byte, 4*int(n))...)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
