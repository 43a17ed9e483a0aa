package script

import (
	"fmt"

	"github.com/joshuapare/bsxkit/internal/buf"
	"github.com/joshuapare/bsxkit/internal/format"
	"github.com/joshuapare/bsxkit/internal/mmfile"
)

// Script is a loaded BSXScript container. It owns its byte buffer; when
// opened from disk the buffer is a read-only mapping released by Close.
//
// A Script is not safe for concurrent use while Import is running.
type Script struct {
	data     []byte
	file     *mmfile.File
	header   format.Header
	names    *StringTable
	messages *StringTable
	closed   bool
}

// Load decodes a container from data. The Script takes ownership of data;
// the caller must not modify it afterwards.
func Load(data []byte) (*Script, error) {
	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	// The rebuild copies everything before the name list verbatim and
	// patches header fields in that copy, so the list must not overlap
	// the header.
	if h.CharNames().ListOffset < format.HeaderSize {
		return nil, fmt.Errorf("bsx header: %w: character-name list at 0x%X overlaps header",
			format.ErrCorruptHeader, h.CharNames().ListOffset)
	}

	names, err := newStringTable(data, CharacterName, h.CharNames())
	if err != nil {
		return nil, err
	}
	messages, err := newStringTable(data, Message, h.Messages())
	if err != nil {
		return nil, err
	}
	return &Script{
		data:     data,
		header:   h,
		names:    names,
		messages: messages,
	}, nil
}

// Open maps the file at path and loads it. The file must be read in full;
// a short read fails with format.ErrTruncated.
func Open(path string) (*Script, error) {
	f, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	if int64(len(f.Data)) != f.Size {
		_ = f.Close()
		return nil, fmt.Errorf("read %s: %w: got %d of %d bytes", path, format.ErrTruncated, len(f.Data), f.Size)
	}
	s, err := Load(f.Data)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.file = f
	return s, nil
}

// Close releases the file mapping, if any. It is safe to call more than once.
func (s *Script) Close() error {
	s.closed = true
	s.data = nil
	if s.file == nil {
		return nil
	}
	f := s.file
	s.file = nil
	return f.Close()
}

// Bytes returns the current container bytes. The slice must not be modified;
// for an opened file it is a read-only mapping.
func (s *Script) Bytes() []byte { return s.data }

// Header returns the decoded header.
func (s *Script) Header() format.Header { return s.header }

// Table returns the string table for kind.
func (s *Script) Table(kind Kind) *StringTable {
	if kind == CharacterName {
		return s.names
	}
	return s.messages
}

// TableLen returns the number of ids in the table for kind.
func (s *Script) TableLen(kind Kind) int { return s.Table(kind).Len() }

// Code returns the bytecode block.
func (s *Script) Code() ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	code, ok := buf.Slice(s.data, s.header.CodeOffset, s.header.CodeSize)
	if !ok {
		return nil, fmt.Errorf("code block 0x%X+0x%X: %w", s.header.CodeOffset, s.header.CodeSize, format.ErrTruncated)
	}
	return code, nil
}

// String decodes the string for id in the kind table.
func (s *Script) String(kind Kind, id int) (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	off, ok := s.Table(kind).Offset(id)
	if !ok {
		return "", fmt.Errorf("%w: %s id %d (table has %d)", ErrBadReference, kind, id, s.TableLen(kind))
	}
	return format.DecodeCString(s.data, off)
}
