package textfile

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLineFormat is returned for a ◆ line that does not match
	// ◆<tag>◆<text> or whose id is not hexadecimal.
	ErrBadLineFormat = errors.New("textfile: bad line format")
	// ErrUnknownTextType is returned when a tag starts with a letter other
	// than A or B.
	ErrUnknownTextType = errors.New("textfile: unknown text type")
	// ErrIndexOutOfRange is returned when an id does not exist in its table.
	ErrIndexOutOfRange = errors.New("textfile: index out of range")
	// ErrBadLineEnding is returned by ParseLineEnding for an unknown name.
	ErrBadLineEnding = errors.New("textfile: unknown line ending")
)

// LineError reports a parse failure on a specific line.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
