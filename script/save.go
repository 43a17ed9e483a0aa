package script

import "github.com/joshuapare/bsxkit/internal/writer"

// Sink receives a complete container. internal/writer provides atomic file
// and in-memory implementations.
type Sink interface {
	WriteScript(buf []byte) error
}

// Save hands the current container bytes to w.
func (s *Script) Save(w Sink) error {
	if s.closed {
		return ErrClosed
	}
	return w.WriteScript(s.data)
}

// SaveFile writes the current container to path, replacing any existing file
// atomically.
func (s *Script) SaveFile(path string) error {
	return s.Save(&writer.FileWriter{Path: path})
}
