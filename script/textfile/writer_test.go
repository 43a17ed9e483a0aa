package textfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bsxkit/internal/testutil"
	"github.com/joshuapare/bsxkit/script"
)

func exportScript(t *testing.T, s *script.Script, eol LineEnding) string {
	t.Helper()
	var out bytes.Buffer
	w := NewWriter(&out, eol)
	_, err := s.References(w.WriteRecord)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	return out.String()
}

func TestExportSample(t *testing.T) {
	s, err := script.Load(testutil.Sample().Build())
	require.NoError(t, err)

	want := "◇A0000000◇Alice\n" +
		"◆A0000000◆Alice\n" +
		"\n" +
		"◇B0000000◇Hello\n" +
		"◆B0000000◆Hello\n" +
		"\n"
	require.Equal(t, want, exportScript(t, s, LF))
}

func TestExportCRLF(t *testing.T) {
	s, err := script.Load(testutil.Sample().Build())
	require.NoError(t, err)

	want := "◇A0000000◇Alice\r\n◆A0000000◆Alice\r\n\r\n" +
		"◇B0000000◇Hello\r\n◆B0000000◆Hello\r\n\r\n"
	require.Equal(t, want, exportScript(t, s, CRLF))
}

func TestTag(t *testing.T) {
	require.Equal(t, "A0000000", Tag(script.CharacterName, 0))
	require.Equal(t, "B000002A", Tag(script.Message, 42))
	require.Equal(t, "B12345678", Tag(script.Message, 0x12345678))
}

func TestWriterCountsRecords(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, LF)
	require.NoError(t, w.WriteRecord(script.Ref{Kind: script.Message, ID: 1, Text: "x"}))
	require.NoError(t, w.WriteRecord(script.Ref{Kind: script.Message, ID: 1, Text: "x"}))
	require.Equal(t, 2, w.Records())
	require.NoError(t, w.Flush())
	require.Equal(t, 2, bytes.Count(out.Bytes(), []byte("◆B0000001◆x\n")))
}

func TestParseLineEnding(t *testing.T) {
	for in, want := range map[string]LineEnding{"": LF, "lf": LF, "LF": LF, "crlf": CRLF, "CrLf": CRLF} {
		got, err := ParseLineEnding(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLineEnding("cr")
	require.ErrorIs(t, err, ErrBadLineEnding)
}
