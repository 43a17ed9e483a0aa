package textfile

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/grafana/regexp"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/bsxkit/script"
)

var translationLine = regexp.MustCompile(`^◆(\w+)◆(.*)$`)

// Bounds reports the size of each string table. *script.Script satisfies it.
type Bounds interface {
	TableLen(kind script.Kind) int
}

// Parse reads translation lines from r and returns the replacement strings.
// Only lines starting with ◆ are considered; the first line for an id wins.
// Input is UTF-8; a leading byte-order mark selects UTF-8 or UTF-16.
func Parse(r io.Reader, bounds Bounds) (*script.Overrides, error) {
	ov := script.NewOverrides()
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, dec))
	scanner.Buffer(make([]byte, 0, scannerInitialBufferSize), scannerMaxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(line, string(TranslationMarker)) {
			continue
		}
		kind, id, text, err := parseLine(line, bounds)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		ov.Set(kind, id, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ov, nil
}

func parseLine(line string, bounds Bounds) (script.Kind, int, string, error) {
	m := translationLine.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, "", ErrBadLineFormat
	}
	tag, text := m[1], m[2]

	kind, ok := script.KindFromLetter(tag[0])
	if !ok {
		return 0, 0, "", ErrUnknownTextType
	}
	v, err := strconv.ParseUint(tag[1:], 16, 31)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, "", ErrIndexOutOfRange
		}
		return 0, 0, "", ErrBadLineFormat
	}
	id := int(v)
	if id >= bounds.TableLen(kind) {
		return 0, 0, "", ErrIndexOutOfRange
	}
	return kind, id, text, nil
}
