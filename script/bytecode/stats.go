package bytecode

// OpcodeCount is one row of an opcode histogram.
type OpcodeCount struct {
	Op    *Op
	Count int
	Bytes int
}

// Stats is a per-opcode histogram of a code block.
type Stats struct {
	counts [256]OpcodeCount
}

// Rows returns the opcodes that occurred at least once, in opcode order.
func (s *Stats) Rows() []OpcodeCount {
	var out []OpcodeCount
	for _, c := range s.counts {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times opcode c occurred.
func (s *Stats) Count(c byte) int { return s.counts[c].Count }

// Collect walks code and builds its opcode histogram.
func Collect(code []byte) (*Stats, Result, error) {
	s := &Stats{}
	res, err := Walk(code, func(in Instruction) error {
		row := &s.counts[in.Op.Code]
		row.Op = in.Op
		row.Count++
		row.Bytes += in.Size
		return nil
	})
	if err != nil {
		return nil, res, err
	}
	return s, res, nil
}
