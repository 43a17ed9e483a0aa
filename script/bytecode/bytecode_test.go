package bytecode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedSizes is the size table for every constant-size opcode.
func fixedSizes() map[byte]int {
	m := map[byte]int{}
	set := func(size int, codes ...byte) {
		for _, c := range codes {
			m[c] = size
		}
	}
	set(1, span(0x00, 0x02)...)
	set(5, span(0x03, 0x09)...)
	set(1, 0x0A, 0x0B)
	set(18, span(0x0C, 0x19)...)
	set(18, span(0x3A, 0x3C)...)
	set(12, 0x1A, 0x1B, 0x1C)
	set(1, span(0x1E, 0x32)...)
	set(13, 0x33)
	set(5, 0x34, 0x36, 0x38)
	set(1, 0x35, 0x37, 0x39)
	set(12, 0x3D)
	set(1, span(0x3F, 0x41)...)
	return m
}

func TestOpcodeTable(t *testing.T) {
	sizes := fixedSizes()
	for c := 0; c < 256; c++ {
		op, ok := Lookup(byte(c))
		switch {
		case c == OpDisplayMessage || c == 0x3E:
			require.True(t, ok, "opcode 0x%02X", c)
			require.True(t, op.Variable(), "opcode 0x%02X should be variable", c)
		case sizes[byte(c)] != 0:
			require.True(t, ok, "opcode 0x%02X", c)
			require.False(t, op.Variable())
			require.Equal(t, sizes[byte(c)], op.Size, "opcode 0x%02X", c)
		default:
			require.False(t, ok, "opcode 0x%02X should be unknown", c)
		}
	}
}

func TestWalkExhaustive(t *testing.T) {
	var code []byte
	count := 0
	for c := 0; c < 256; c++ {
		op, ok := Lookup(byte(c))
		if !ok || op.Variable() {
			continue
		}
		code = append(code, fixedIns(byte(c), op.Size)...)
		count++
	}
	code = concat(code,
		msgIns(0, 1, 0, 0),
		msgIns(1, 2, 3, 0),
		msgIns(2, 4, 5, 3),
		msgIns(3, 6, 7, 0),
		countedIns(0),
		countedIns(2),
	)
	count += 6

	res, err := Walk(code, nil)
	require.NoError(t, err)
	require.Equal(t, len(code), res.End)
	require.False(t, res.Unresolved())
	require.Equal(t, count, res.Instructions)
	require.Equal(t, 4, res.Messages)
}

func TestDisplayMessageSizes(t *testing.T) {
	tests := []struct {
		name    string
		code    []byte
		size    int
		hasChar bool
	}{
		{"subtype 0", msgIns(0, 9, 0, 0), 6, false},
		{"subtype 1", msgIns(1, 9, 1, 0), 10, true},
		{"subtype 2 no extra", msgIns(2, 9, 1, 0), 14, true},
		{"subtype 2 extra", msgIns(2, 9, 1, 3), 26, true},
		{"subtype 3 extra", msgIns(3, 9, 1, 1), 22, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, size, msg, err := Decode(tt.code, 0)
			require.NoError(t, err)
			require.Equal(t, "msg", op.String())
			require.Equal(t, tt.size, size)
			require.Len(t, tt.code, tt.size)
			require.NotNil(t, msg)
			require.Equal(t, int32(9), msg.MessageID)
			require.Equal(t, tt.hasChar, msg.HasChar)
			if tt.hasChar {
				require.Equal(t, int32(1), msg.CharID)
			}
		})
	}
}

func TestWalkVisitsMessagesInOrder(t *testing.T) {
	code := concat(
		fixedIns(0x12, 18),
		msgIns(1, 10, 0, 0),
		fixedIns(0x04, 5),
		msgIns(0, 11, 0, 0),
		fixedIns(0x0A, 1),
	)
	var ids []int32
	var addrs []int
	res, err := Walk(code, func(in Instruction) error {
		if in.Message != nil {
			ids = append(ids, in.Message.MessageID)
			addrs = append(addrs, in.Addr)
		}
		return nil
	})
	require.NoError(t, err)
	require.False(t, res.Unresolved())
	require.Equal(t, []int32{10, 11}, ids)
	require.Equal(t, []int{18, 33}, addrs)
}

func TestWalkErrors(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want error
	}{
		{"unknown opcode at end", concat(fixedIns(0x00, 1), fixedIns(0x12, 18), []byte{0xFF}), ErrUnknownOpcode},
		{"unknown opcode 0x42", []byte{0x42}, ErrUnknownOpcode},
		{"unknown message type", []byte{OpDisplayMessage, 4, 0, 0, 0, 0}, ErrUnknownMessageType},
		{"truncated message id", []byte{OpDisplayMessage, 0, 1, 0}, ErrTruncatedInstruction},
		{"truncated char id", []byte{OpDisplayMessage, 1, 1, 0, 0, 0, 2}, ErrTruncatedInstruction},
		{"truncated 0x3E count", []byte{0x3E, 1, 0}, ErrTruncatedInstruction},
		{"negative 0x3E count", append([]byte{0x3E}, i32(-2)...), ErrBadOperand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Walk(tt.code, func(Instruction) error { return nil })
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWalkTruncatedExtraCountSubtype2(t *testing.T) {
	code := msgIns(2, 0, 0, 0)[:12]
	_, err := Walk(code, nil)
	require.ErrorIs(t, err, ErrTruncatedInstruction)
}

func TestWalkUnresolvedTail(t *testing.T) {
	// A mov needs 18 bytes but only 4 remain; the sweep ends past the block.
	code := concat(fixedIns(0x00, 1), []byte{0x12, 0, 0, 0})
	res, err := Walk(code, nil)
	require.NoError(t, err)
	require.True(t, res.Unresolved())
	require.Equal(t, 1+18, res.End)
	require.Equal(t, 2, res.Instructions)
}

func TestWalkEmpty(t *testing.T) {
	res, err := Walk(nil, nil)
	require.NoError(t, err)
	require.False(t, res.Unresolved())
	require.Zero(t, res.Instructions)
}

func TestWalkVisitorError(t *testing.T) {
	stop := errors.New("stop")
	code := concat(fixedIns(0x00, 1), msgIns(0, 1, 0, 0), fixedIns(0x01, 1))
	res, err := Walk(code, func(in Instruction) error {
		if in.Message != nil {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, res.End)
}

func TestCollectStats(t *testing.T) {
	code := concat(
		fixedIns(0x12, 18),
		fixedIns(0x12, 18),
		msgIns(1, 0, 0, 0),
		fixedIns(0x0A, 1),
	)
	stats, res, err := Collect(code)
	require.NoError(t, err)
	require.False(t, res.Unresolved())
	require.Equal(t, 2, stats.Count(0x12))
	require.Equal(t, 1, stats.Count(OpDisplayMessage))

	rows := stats.Rows()
	require.Len(t, rows, 3)
	require.Equal(t, byte(0x0A), rows[0].Op.Code)
	require.Equal(t, 36, rows[1].Bytes)
	require.Equal(t, "mov", rows[1].Op.String())
	require.Equal(t, "op_33", opcodes[0x33].String())
}
