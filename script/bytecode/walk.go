package bytecode

// Instruction is one decoded instruction handed to a Walk visitor. Message is
// set only for display-message instructions.
type Instruction struct {
	Addr    int
	Op      *Op
	Size    int
	Message *Message
}

// Result summarizes a completed sweep.
type Result struct {
	// End is the cursor position after the last instruction.
	End int
	// CodeSize is the length of the code block that was walked.
	CodeSize int
	// Instructions counts every decoded instruction.
	Instructions int
	// Messages counts display-message instructions.
	Messages int
}

// Unresolved reports whether the sweep did not finish exactly at the end of
// the code block. This is not an error: the format tolerates padding and
// unreached code, but callers should warn about it.
func (r Result) Unresolved() bool { return r.End != r.CodeSize }

// Walk sweeps code from address 0, calling visit for every instruction in
// physical order. The sweep stops at the first instruction that ends at or
// beyond len(code). A non-nil error from visit aborts the walk and is
// returned unchanged.
func Walk(code []byte, visit func(Instruction) error) (Result, error) {
	res := Result{CodeSize: len(code)}
	addr := 0
	for addr < len(code) {
		op, size, msg, err := Decode(code, addr)
		if err != nil {
			res.End = addr
			return res, err
		}
		res.Instructions++
		if msg != nil {
			res.Messages++
		}
		if visit != nil {
			if err := visit(Instruction{Addr: addr, Op: op, Size: size, Message: msg}); err != nil {
				res.End = addr
				return res, err
			}
		}
		addr += size
	}
	res.End = addr
	return res, nil
}
