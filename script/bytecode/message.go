package bytecode

import (
	"fmt"

	"github.com/joshuapare/bsxkit/internal/buf"
)

// OpDisplayMessage is the only opcode that references string tables.
const OpDisplayMessage = 0x1D

// Operand layout of a display-message instruction, relative to the opcode.
const (
	msgSubtypeOffset   = 1
	msgMessageIDOffset = 2
	msgCharIDOffset    = 6
	msgExtraCountField = 10
)

// Message holds the string references carried by a display-message
// instruction.
type Message struct {
	Subtype   byte
	MessageID int32
	// CharID is only meaningful when HasChar is set.
	CharID  int32
	HasChar bool
}

// DecodeMessage decodes the display-message instruction whose opcode is at
// code[addr]. Subtype 0 carries a message id only; subtypes 1-3 carry a
// message id followed by a character id.
func DecodeMessage(code []byte, addr int) (Message, error) {
	subtype, ok := buf.ByteAt(code, addr+msgSubtypeOffset)
	if !ok {
		return Message{}, ErrTruncatedInstruction
	}
	m := Message{Subtype: subtype}
	switch subtype {
	case 0:
	case 1, 2, 3:
		m.HasChar = true
	default:
		return Message{}, fmt.Errorf("%w: subtype %d", ErrUnknownMessageType, subtype)
	}

	if m.MessageID, ok = buf.I32At(code, addr+msgMessageIDOffset); !ok {
		return Message{}, ErrTruncatedInstruction
	}
	if m.HasChar {
		if m.CharID, ok = buf.I32At(code, addr+msgCharIDOffset); !ok {
			return Message{}, ErrTruncatedInstruction
		}
	}
	return m, nil
}

// messageSize computes the size of a display-message instruction whose
// subtype has already been validated by DecodeMessage.
func messageSize(code []byte, addr int, m Message) (int, error) {
	size := 6 + 4*int(m.Subtype)
	if m.Subtype > 1 {
		n, ok := buf.I32At(code, addr+msgExtraCountField)
		if !ok {
			return 0, ErrTruncatedInstruction
		}
		size += 4 * int(n)
	}
	return size, nil
}
