package bytecode

import (
	"fmt"

	"github.com/joshuapare/bsxkit/internal/buf"
)

// sizeFunc computes the size of a data-dependent instruction at addr. It may
// also return the decoded display message.
type sizeFunc func(code []byte, addr int) (int, *Message, error)

// Op describes one entry of the opcode table.
type Op struct {
	Code     byte
	Mnemonic string
	// Size is the instruction size in bytes including the opcode, or 0 when
	// the size depends on operand values.
	Size int

	sizeOf sizeFunc
}

// Variable reports whether the instruction size depends on its operands.
func (o *Op) Variable() bool { return o.sizeOf != nil }

func (o *Op) String() string {
	if o.Mnemonic == "" {
		return fmt.Sprintf("op_%02x", o.Code)
	}
	return o.Mnemonic
}

var opcodes [256]*Op

func define(mnemonic string, size int, sizeOf sizeFunc, codes ...byte) {
	for _, c := range codes {
		if opcodes[c] != nil {
			panic(fmt.Sprintf("bytecode: opcode 0x%02X defined twice", c))
		}
		opcodes[c] = &Op{Code: c, Mnemonic: mnemonic, Size: size, sizeOf: sizeOf}
	}
}

func span(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi-lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		out = append(out, byte(c))
	}
	return out
}

func join(groups ...[]byte) []byte {
	var out []byte
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func init() {
	define("boot", 1, nil, 0x00)
	define("ret1", 1, nil, 0x01)
	define("ret2", 1, nil, 0x02)
	define("goto", 5, nil, 0x03, 0x07, 0x08)
	define("jmp", 5, nil, 0x04)
	define("jt", 5, nil, 0x05)
	define("jf", 5, nil, 0x06)
	define("call", 5, nil, 0x09)
	define("ret", 1, nil, 0x0A)
	define("rsp", 1, nil, 0x0B)
	define("binop", 18, nil, join(span(0x0C, 0x11), span(0x13, 0x19), span(0x3A, 0x3C))...)
	define("mov", 18, nil, 0x12)
	define("neg", 12, nil, 0x1A)
	define("", 12, nil, 0x1B, 0x1C)
	define("msg", 0, displayMessageSize, OpDisplayMessage)
	define("", 1, nil, span(0x1E, 0x32)...)
	define("", 13, nil, 0x33)
	define("", 5, nil, 0x34, 0x36, 0x38)
	define("", 1, nil, 0x35, 0x37, 0x39)
	define("not", 12, nil, 0x3D)
	define("", 0, countedSize, 0x3E)
	define("", 1, nil, span(0x3F, 0x41)...)
}

// Lookup returns the table entry for opcode c.
func Lookup(c byte) (*Op, bool) {
	op := opcodes[c]
	return op, op != nil
}

func displayMessageSize(code []byte, addr int) (int, *Message, error) {
	m, err := DecodeMessage(code, addr)
	if err != nil {
		return 0, nil, err
	}
	size, err := messageSize(code, addr, m)
	if err != nil {
		return 0, nil, err
	}
	return size, &m, nil
}

// countedSize handles 0x3E: an int32 element count followed by that many
// 4-byte elements.
func countedSize(code []byte, addr int) (int, *Message, error) {
	n, ok := buf.I32At(code, addr+1)
	if !ok {
		return 0, nil, ErrTruncatedInstruction
	}
	return 5 + 4*int(n), nil, nil
}

// Decode returns the table entry, size and (for 0x1D) the display message of
// the instruction at addr.
func Decode(code []byte, addr int) (*Op, int, *Message, error) {
	c, ok := buf.ByteAt(code, addr)
	if !ok {
		return nil, 0, nil, ErrTruncatedInstruction
	}
	op := opcodes[c]
	if op == nil {
		return nil, 0, nil, fmt.Errorf("%w 0x%02X at 0x%X", ErrUnknownOpcode, c, addr)
	}
	if op.sizeOf == nil {
		return op, op.Size, nil, nil
	}
	size, msg, err := op.sizeOf(code, addr)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("%s at 0x%X: %w", op, addr, err)
	}
	if size < 1 {
		return nil, 0, nil, fmt.Errorf("%s at 0x%X: %w: size %d", op, addr, ErrBadOperand, size)
	}
	return op, size, msg, nil
}
