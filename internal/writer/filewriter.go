// Package writer exposes sinks for script and text emission.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned when NoClobber is set and the destination exists.
var ErrExists = errors.New("writer: destination exists")

// FileWriter writes bytes to a filesystem path atomically. Readers of Path
// either see the previous file or the complete new one, never a prefix.
type FileWriter struct {
	Path string
	// NoClobber refuses to replace an existing file.
	NoClobber bool
	// Perm is the mode of a newly created file. Zero means 0o644.
	Perm os.FileMode
}

// WriteScript writes a container buffer to the configured path.
func (w *FileWriter) WriteScript(buf []byte) error {
	return w.write(buf)
}

// WriteText writes an exported text file to the configured path.
func (w *FileWriter) WriteText(buf []byte) error {
	return w.write(buf)
}

func (w *FileWriter) write(buf []byte) error {
	if w.NoClobber {
		if _, err := os.Stat(w.Path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, w.Path)
		}
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".bsxkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
