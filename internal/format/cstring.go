package format

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/bsxkit/internal/buf"
)

// utf16LE is the string encoding used inside containers. Strings carry no
// BOM, so none is consumed or produced.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// CStringSpan returns the raw UTF-16LE bytes of the null-terminated string
// starting at off, without the terminator. The scan stops one code unit
// short of the buffer end, so an unterminated final unit is never included.
// An offset outside b yields an empty span.
func CStringSpan(b []byte, off int) []byte {
	if off < 0 || off >= len(b) {
		return nil
	}
	j := off
	for j+CodeUnitSize < len(b) && buf.U16LE(b[j:]) != 0 {
		j += CodeUnitSize
	}
	return b[off:j]
}

// DecodeCString decodes the null-terminated UTF-16LE string at off to UTF-8.
// Unpaired surrogates decode to U+FFFD.
func DecodeCString(b []byte, off int) (string, error) {
	raw := CStringSpan(b, off)
	if len(raw) == 0 {
		return "", nil
	}
	out, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode utf-16le at 0x%X: %w", off, err)
	}
	return string(out), nil
}

// EncodeCString encodes s as UTF-16LE followed by a zero code unit.
func EncodeCString(s string) ([]byte, error) {
	out, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16le: %w", err)
	}
	return append(out, 0, 0), nil
}
