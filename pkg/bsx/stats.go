package bsx

import (
	"fmt"

	"github.com/joshuapare/bsxkit/script"
	"github.com/joshuapare/bsxkit/script/bytecode"
)

// OpcodeRow is one line of an opcode histogram.
type OpcodeRow struct {
	Opcode   byte   `json:"opcode"`
	Mnemonic string `json:"mnemonic"`
	Count    int    `json:"count"`
	Bytes    int    `json:"bytes"`
}

// CodeStats is the opcode histogram of a container's code block.
type CodeStats struct {
	Path         string      `json:"path"`
	CodeSize     int         `json:"code_size"`
	Instructions int         `json:"instructions"`
	ScanEnd      int         `json:"scan_end"`
	Unresolved   bool        `json:"unresolved"`
	Opcodes      []OpcodeRow `json:"opcodes"`
}

// Stats sweeps the code block of the container at path and counts each
// opcode.
func Stats(path string, opts *Options) (*CodeStats, error) {
	s, err := script.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	code, err := s.Code()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	hist, res, err := bytecode.Collect(code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	warnUnresolved(opts.logger(), res.End, res.CodeSize)

	cs := &CodeStats{
		Path:         path,
		CodeSize:     res.CodeSize,
		Instructions: res.Instructions,
		ScanEnd:      res.End,
		Unresolved:   res.Unresolved(),
	}
	for _, row := range hist.Rows() {
		cs.Opcodes = append(cs.Opcodes, OpcodeRow{
			Opcode:   row.Op.Code,
			Mnemonic: row.Op.String(),
			Count:    row.Count,
			Bytes:    row.Bytes,
		})
	}
	return cs, nil
}
