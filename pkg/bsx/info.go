package bsx

import (
	"fmt"

	"github.com/joshuapare/bsxkit/script"
)

// SectionInfo is one decoded header section.
type SectionInfo struct {
	Index       int    `json:"index"`
	ListOffset  int    `json:"list_offset"`
	RawCount    uint32 `json:"raw_count"`
	Count       int    `json:"count"`
	BlockOffset int    `json:"block_offset"`
}

// TableInfo summarizes one string table.
type TableInfo struct {
	Kind        string `json:"kind"`
	Entries     int    `json:"entries"`
	Empty       int    `json:"empty"`
	ListOffset  int    `json:"list_offset"`
	BlockOffset int    `json:"block_offset"`
}

// ScriptInfo summarizes a container.
type ScriptInfo struct {
	Path       string        `json:"path"`
	Size       int           `json:"size"`
	Signature  string        `json:"signature"`
	CodeOffset int           `json:"code_offset"`
	CodeSize   int           `json:"code_size"`
	SizeFields []uint32      `json:"size_fields"`
	Sections   []SectionInfo `json:"sections"`
	Tables     []TableInfo   `json:"tables"`
	Export     *ExportResult `json:"export"`
}

// Info loads the container at path and summarizes its header, string tables
// and code sweep.
func Info(path string, opts *Options) (*ScriptInfo, error) {
	s, err := script.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	h := s.Header()
	info := &ScriptInfo{
		Path:       path,
		Size:       len(s.Bytes()),
		Signature:  h.Signature,
		CodeOffset: h.CodeOffset,
		CodeSize:   h.CodeSize,
		SizeFields: append([]uint32(nil), h.SizeFields[:]...),
	}
	for i, sec := range h.Sections {
		info.Sections = append(info.Sections, SectionInfo{
			Index:       i,
			ListOffset:  sec.ListOffset,
			RawCount:    sec.RawCount,
			Count:       sec.Count,
			BlockOffset: sec.BlockOffset,
		})
	}
	for _, kind := range script.Kinds {
		ti, err := tableInfo(s, kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		info.Tables = append(info.Tables, ti)
	}

	_, res, err := Render(s, opts.lineEnding())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	warnUnresolved(opts.logger(), res.ScanEnd, res.CodeSize)
	info.Export = res
	return info, nil
}

func tableInfo(s *script.Script, kind script.Kind) (TableInfo, error) {
	t := s.Table(kind)
	ti := TableInfo{
		Kind:        kind.String(),
		Entries:     t.Len(),
		ListOffset:  t.ListOffset,
		BlockOffset: t.BlockOffset,
	}
	for id := 0; id < t.Len(); id++ {
		str, err := s.String(kind, id)
		if err != nil {
			return TableInfo{}, err
		}
		if str == "" {
			ti.Empty++
		}
	}
	return ti, nil
}
