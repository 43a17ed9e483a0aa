// Package mmfile provides platform-specific helpers for memory-mapping script files.
package mmfile

import "sync"

// File is a read-only view of a file's contents. On unix the bytes are a
// shared read-only mapping; writes to Data fault. Elsewhere they are a heap
// copy.
type File struct {
	// Data holds the file contents.
	Data []byte
	// Size is the file size reported by stat when the file was opened.
	Size int64

	once  sync.Once
	unmap func() error
	err   error
}

// Close releases the mapping. Calling Close more than once is a no-op.
func (f *File) Close() error {
	f.once.Do(func() {
		if f.unmap != nil {
			f.err = f.unmap()
		}
		f.Data = nil
	})
	return f.err
}
