package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/bsxkit/script"
)

// LineEnding selects the record line terminator.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

func (e LineEnding) String() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}

func (e LineEnding) bytes() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseLineEnding accepts "lf" or "crlf" in any case. The empty string
// selects LF.
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(s) {
	case "", "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	}
	return LF, fmt.Errorf("%w: %q", ErrBadLineEnding, s)
}

// Writer emits export records. Call Flush when done.
type Writer struct {
	w       *bufio.Writer
	eol     string
	records int
}

// NewWriter returns a Writer that terminates lines with eol.
func NewWriter(w io.Writer, eol LineEnding) *Writer {
	return &Writer{w: bufio.NewWriter(w), eol: eol.bytes()}
}

// Tag formats the id tag for kind and id, e.g. "B000002A".
func Tag(kind script.Kind, id int) string {
	return fmt.Sprintf("%c%0*X", kind.Letter(), IDWidth, id)
}

// WriteRecord writes the reference line, the translation line and the blank
// separator for ref.
func (w *Writer) WriteRecord(ref script.Ref) error {
	tag := Tag(ref.Kind, ref.ID)
	for _, marker := range []rune{OriginalMarker, TranslationMarker} {
		if _, err := fmt.Fprintf(w.w, "%c%s%c%s%s", marker, tag, marker, ref.Text, w.eol); err != nil {
			return err
		}
	}
	if _, err := w.w.WriteString(w.eol); err != nil {
		return err
	}
	w.records++
	return nil
}

// Records returns the number of records written so far.
func (w *Writer) Records() int { return w.records }

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
