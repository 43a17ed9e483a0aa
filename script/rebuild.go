package script

import (
	"fmt"
	"math"

	"github.com/joshuapare/bsxkit/internal/arena"
	"github.com/joshuapare/bsxkit/internal/format"
)

// Layout is the placement of the regenerated tables in a rebuilt container.
// Every region after the verbatim prefix starts on a 16-byte boundary; the
// message block is not padded at the end.
type Layout struct {
	NameListOffset     int
	NameBlockOffset    int
	MessageListOffset  int
	MessageBlockOffset int
	End                int
}

// PlanLayout places the four regenerated regions after a prefix that ends at
// nameListOffset.
func PlanLayout(nameListOffset, nameCount, nameBlockSize, msgCount, msgBlockSize int) Layout {
	l := Layout{NameListOffset: nameListOffset}
	l.NameBlockOffset = format.Align16(l.NameListOffset + format.OffsetEntrySize*nameCount)
	l.MessageListOffset = format.Align16(l.NameBlockOffset + nameBlockSize)
	l.MessageBlockOffset = format.Align16(l.MessageListOffset + format.OffsetEntrySize*msgCount)
	l.End = l.MessageBlockOffset + msgBlockSize
	return l
}

// encodedTable is a regenerated string block and its code-unit offset list.
type encodedTable struct {
	offsets []uint32
	block   []byte
}

// encodeTable re-encodes every id of the kind table, taking the override when
// present and the original string otherwise.
func (s *Script) encodeTable(kind Kind, ov *Overrides) (encodedTable, error) {
	t := s.Table(kind)
	a := arena.New(0)
	offsets := make([]uint32, t.Len())
	for id := range offsets {
		text, ok := ov.Lookup(kind, id)
		if !ok {
			var err error
			if text, err = s.String(kind, id); err != nil {
				return encodedTable{}, err
			}
		}
		enc, err := format.EncodeCString(text)
		if err != nil {
			return encodedTable{}, fmt.Errorf("%s %d: %w", kind, id, err)
		}
		pos := a.Len() / format.CodeUnitSize
		if pos > math.MaxInt32 {
			return encodedTable{}, fmt.Errorf("%s block: %w", kind, ErrTooLarge)
		}
		offsets[id] = uint32(pos)
		if _, err := a.Append(enc); err != nil {
			return encodedTable{}, err
		}
	}
	return encodedTable{offsets: offsets, block: a.Freeze()}, nil
}

// Rebuild returns a new container with both string tables regenerated from
// ov, falling back to the original string for every id without an override.
// The receiver is not modified.
func (s *Script) Rebuild(ov *Overrides) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	names, err := s.encodeTable(CharacterName, ov)
	if err != nil {
		return nil, err
	}
	messages, err := s.encodeTable(Message, ov)
	if err != nil {
		return nil, err
	}

	l := PlanLayout(s.names.ListOffset, len(names.offsets), len(names.block),
		len(messages.offsets), len(messages.block))
	if l.End > math.MaxInt32 {
		return nil, ErrTooLarge
	}

	// Header, code block and every section before the name list, with the
	// three moved offsets patched. The name list itself does not move.
	prefix := append([]byte(nil), s.data[:l.NameListOffset]...)
	format.PutI32(prefix, format.CharNameBlockOffsetField, int32(l.NameBlockOffset))
	format.PutI32(prefix, format.MessageListOffsetField, int32(l.MessageListOffset))
	format.PutI32(prefix, format.MessageBlockOffsetField, int32(l.MessageBlockOffset))

	out := arena.New(l.End)
	steps := []struct {
		region string
		want   int
		write  func() error
	}{
		{"prefix", 0, func() error { _, err := out.Append(prefix); return err }},
		{"name list", l.NameListOffset, func() error { return appendList(out, names.offsets) }},
		{"name block", l.NameBlockOffset, func() error { _, err := out.Append(names.block); return err }},
		{"message list", l.MessageListOffset, func() error { return appendList(out, messages.offsets) }},
		{"message block", l.MessageBlockOffset, func() error { _, err := out.Append(messages.block); return err }},
	}
	for i, st := range steps {
		if i > 1 {
			if _, err := out.Pad(format.BlockAlignment); err != nil {
				return nil, err
			}
		}
		if out.Len() != st.want {
			return nil, fmt.Errorf("rebuild: %s at 0x%X, planned 0x%X", st.region, out.Len(), st.want)
		}
		if err := st.write(); err != nil {
			return nil, fmt.Errorf("rebuild: %s: %w", st.region, err)
		}
	}
	return out.Freeze(), nil
}

func appendList(a *arena.Arena, offsets []uint32) error {
	for _, v := range offsets {
		if _, err := a.AppendU32(v); err != nil {
			return err
		}
	}
	return nil
}

// Import rebuilds the container with ov applied and makes the result the
// Script's new state. On error the Script is left unchanged.
func (s *Script) Import(ov *Overrides) error {
	data, err := s.Rebuild(ov)
	if err != nil {
		return err
	}
	next, err := Load(data)
	if err != nil {
		return fmt.Errorf("reload rebuilt container: %w", err)
	}
	old := s.file
	s.data, s.header, s.names, s.messages, s.file = next.data, next.header, next.names, next.messages, nil
	if old != nil {
		return old.Close()
	}
	return nil
}
