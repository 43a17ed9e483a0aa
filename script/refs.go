package script

import "github.com/joshuapare/bsxkit/script/bytecode"

// NoID marks an absent character or message id inside a display-message
// instruction.
const NoID = -1

// Ref is one non-empty string referenced by a display-message instruction.
type Ref struct {
	Kind Kind
	ID   int
	Text string
	// Addr is the code-block address of the referencing instruction.
	Addr int
}

// References sweeps the code block and calls visit for every non-empty
// string referenced by a display-message instruction, in physical order.
// The character name of an instruction is visited before its message.
// Repeated references are reported every time they occur.
//
// The returned Result reports whether the sweep ended exactly at the end of
// the code block; a mismatch is not an error.
func (s *Script) References(visit func(Ref) error) (bytecode.Result, error) {
	code, err := s.Code()
	if err != nil {
		return bytecode.Result{}, err
	}
	return bytecode.Walk(code, func(in bytecode.Instruction) error {
		m := in.Message
		if m == nil {
			return nil
		}
		if m.HasChar {
			if err := s.emit(visit, CharacterName, m.CharID, in.Addr); err != nil {
				return err
			}
		}
		return s.emit(visit, Message, m.MessageID, in.Addr)
	})
}

func (s *Script) emit(visit func(Ref) error, kind Kind, id int32, addr int) error {
	if id == NoID {
		return nil
	}
	text, err := s.String(kind, int(id))
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return visit(Ref{Kind: kind, ID: int(id), Text: text, Addr: addr})
}
