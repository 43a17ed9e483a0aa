package bsx

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/joshuapare/bsxkit/internal/writer"
	"github.com/joshuapare/bsxkit/script"
	"github.com/joshuapare/bsxkit/script/textfile"
)

// ImportResult describes a completed import.
type ImportResult struct {
	// NameOverrides and MessageOverrides count the distinct ids that had a
	// translation line.
	NameOverrides    int `json:"name_overrides"`
	MessageOverrides int `json:"message_overrides"`
	InputSize        int `json:"input_size"`
	OutputSize       int `json:"output_size"`
}

// Import applies the translation lines in textPath to the container at
// scriptPath and writes the rebuilt container to outPath. The source
// container is not modified, and outPath is not touched on any error.
func Import(scriptPath, textPath, outPath string, opts *Options) (*ImportResult, error) {
	logger := log.With(opts.logger(), "script", scriptPath)

	s, err := script.Open(scriptPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	f, err := os.Open(textPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ov, err := textfile.Parse(f, s)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", textPath, err)
	}
	res := &ImportResult{
		NameOverrides:    ov.Len(script.CharacterName),
		MessageOverrides: ov.Len(script.Message),
		InputSize:        len(s.Bytes()),
	}
	level.Debug(logger).Log("msg", "parsed translations", "text", textPath,
		"names", res.NameOverrides, "messages", res.MessageOverrides)

	if err := s.Import(ov); err != nil {
		return nil, fmt.Errorf("rebuild %s: %w", scriptPath, err)
	}
	res.OutputSize = len(s.Bytes())

	if err := s.Save(&writer.FileWriter{Path: outPath, NoClobber: opts.noClobber()}); err != nil {
		return nil, fmt.Errorf("write %s: %w", outPath, err)
	}
	level.Debug(logger).Log("msg", "wrote rebuilt container", "path", outPath, "bytes", res.OutputSize)
	return res, nil
}
