package script

import (
	"fmt"

	"github.com/joshuapare/bsxkit/internal/buf"
	"github.com/joshuapare/bsxkit/internal/format"
)

// StringTable maps ids to absolute byte offsets of strings. The id of an entry
// is its position in the table.
type StringTable struct {
	Kind        Kind
	ListOffset  int
	BlockOffset int

	entries []int
}

// newStringTable reads count little-endian int32 code-unit indices at the
// section's list offset and turns each into an absolute byte offset:
// BlockOffset + 2*index.
func newStringTable(data []byte, kind Kind, sec format.Section) (*StringTable, error) {
	if _, err := buf.CheckListBounds(len(data), sec.ListOffset, sec.Count, format.OffsetEntrySize); err != nil {
		return nil, fmt.Errorf("%s offset list: %w: %v", kind, format.ErrTruncated, err)
	}
	t := &StringTable{
		Kind:        kind,
		ListOffset:  sec.ListOffset,
		BlockOffset: sec.BlockOffset,
		entries:     make([]int, sec.Count),
	}
	for i := range t.entries {
		raw := format.ReadI32(data, sec.ListOffset+format.OffsetEntrySize*i)
		t.entries[i] = sec.BlockOffset + format.CodeUnitSize*int(raw)
	}
	return t, nil
}

// Len returns the number of ids in the table.
func (t *StringTable) Len() int { return len(t.entries) }

// Offset returns the absolute byte offset of id.
func (t *StringTable) Offset(id int) (int, bool) {
	if id < 0 || id >= len(t.entries) {
		return 0, false
	}
	return t.entries[id], true
}

// Entries returns a copy of all offsets in id order.
func (t *StringTable) Entries() []int {
	return append([]int(nil), t.entries...)
}
