package bsx

import (
	"bytes"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/joshuapare/bsxkit/internal/writer"
	"github.com/joshuapare/bsxkit/script"
	"github.com/joshuapare/bsxkit/script/bytecode"
	"github.com/joshuapare/bsxkit/script/textfile"
)

// ExportResult describes a completed export.
type ExportResult struct {
	Records      int  `json:"records"`
	Instructions int  `json:"instructions"`
	Messages     int  `json:"messages"`
	ScanEnd      int  `json:"scan_end"`
	CodeSize     int  `json:"code_size"`
	Unresolved   bool `json:"unresolved"`
}

// Export writes the text file for the container at scriptPath to textPath.
// Nothing is written if the scan fails.
func Export(scriptPath, textPath string, opts *Options) (*ExportResult, error) {
	out, res, err := exportBytes(scriptPath, opts)
	if err != nil {
		return nil, err
	}
	w := &writer.FileWriter{Path: textPath, NoClobber: opts.noClobber()}
	if err := w.WriteText(out); err != nil {
		return nil, fmt.Errorf("write %s: %w", textPath, err)
	}
	level.Debug(opts.logger()).Log("msg", "wrote text file", "path", textPath, "bytes", len(out))
	return res, nil
}

// ExportString returns the text file content for the container at
// scriptPath.
func ExportString(scriptPath string, opts *Options) (string, *ExportResult, error) {
	out, res, err := exportBytes(scriptPath, opts)
	if err != nil {
		return "", nil, err
	}
	return string(out), res, nil
}

func exportBytes(scriptPath string, opts *Options) ([]byte, *ExportResult, error) {
	logger := log.With(opts.logger(), "script", scriptPath)
	s, err := script.Open(scriptPath)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	out, res, err := Render(s, opts.lineEnding())
	if err != nil {
		return nil, nil, fmt.Errorf("export %s: %w", scriptPath, err)
	}
	level.Debug(logger).Log("msg", "scanned code block", "instructions", res.Instructions, "records", res.Records)
	warnUnresolved(logger, res.ScanEnd, res.CodeSize)
	return out, res, nil
}

// Render exports s to memory.
func Render(s *script.Script, eol textfile.LineEnding) ([]byte, *ExportResult, error) {
	var buf bytes.Buffer
	tw := textfile.NewWriter(&buf, eol)
	scan, err := s.References(tw.WriteRecord)
	if err != nil {
		return nil, nil, err
	}
	if err := tw.Flush(); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), newExportResult(tw.Records(), scan), nil
}

func newExportResult(records int, scan bytecode.Result) *ExportResult {
	return &ExportResult{
		Records:      records,
		Instructions: scan.Instructions,
		Messages:     scan.Messages,
		ScanEnd:      scan.End,
		CodeSize:     scan.CodeSize,
		Unresolved:   scan.Unresolved(),
	}
}

func warnUnresolved(logger log.Logger, end, size int) {
	if end != size {
		level.Warn(logger).Log("msg", "code sweep did not end at the code block boundary",
			"end", fmt.Sprintf("0x%X", end), "code_size", fmt.Sprintf("0x%X", size))
	}
}
