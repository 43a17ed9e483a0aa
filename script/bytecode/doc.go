// Package bytecode walks the code block of a BSXScript container.
//
// # Overview
//
// The walker is a linear-sweep disassembler. It starts at address 0 and
// advances by each instruction's size, looked up in a static 256-entry opcode
// table. No branch is followed and no VM state is modeled, so every byte of
// the code block is visited at most once and memory use does not grow with
// the size of the code.
//
// Most opcodes have a fixed size. Two are data dependent:
//
//   - 0x1D (display message): 6 + 4*subtype bytes, plus 4*n trailing bytes
//     when subtype > 1, where n is the int32 at addr+10.
//   - 0x3E: 5 + 4*n bytes, where n is the int32 at addr+1.
//
// # Usage
//
//	res, err := bytecode.Walk(code, func(in bytecode.Instruction) error {
//	    if in.Message != nil {
//	        fmt.Println(in.Message.MessageID)
//	    }
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//	if res.Unresolved() {
//	    // trailing bytes were not covered by an instruction
//	}
package bytecode
