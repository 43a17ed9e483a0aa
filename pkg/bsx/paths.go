package bsx

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultTextSuffix is appended to a script path to name its text file.
	DefaultTextSuffix = ".txt"
	// DefaultRebuiltExt replaces the script extension on import.
	DefaultRebuiltExt = ".new.dat"
)

// TextPath returns scriptPath with suffix appended, e.g. "bs01.dat.txt".
// An empty suffix selects DefaultTextSuffix.
func TextPath(scriptPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultTextSuffix
	}
	return scriptPath + suffix
}

// RebuiltPath returns scriptPath with its extension replaced by ext, e.g.
// "bs01.new.dat". An empty ext selects DefaultRebuiltExt.
func RebuiltPath(scriptPath, ext string) string {
	if ext == "" {
		ext = DefaultRebuiltExt
	}
	return strings.TrimSuffix(scriptPath, filepath.Ext(scriptPath)) + ext
}
