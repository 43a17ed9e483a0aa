//go:build !unix

package mmfile

import "os"

// Open reads the entire file when mmap is not available.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, Size: info.Size()}, nil
}
