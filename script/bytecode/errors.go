package bytecode

import "errors"

var (
	// ErrUnknownOpcode indicates a byte with no entry in the opcode table.
	ErrUnknownOpcode = errors.New("bytecode: unknown opcode")

	// ErrUnknownMessageType indicates a display-message subtype other than 0-3.
	ErrUnknownMessageType = errors.New("bytecode: unknown message type")

	// ErrTruncatedInstruction indicates an operand extends past the code block.
	ErrTruncatedInstruction = errors.New("bytecode: truncated instruction")

	// ErrBadOperand indicates an operand yields an instruction size below one byte.
	ErrBadOperand = errors.New("bytecode: bad operand")
)
