package utils

import (
	"os"
	"path/filepath"
)

// ParseOutputPath returns the absolute form of p, or p itself when it
// cannot be resolved.
func ParseOutputPath(p string) string {
	fp, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return fp
}

// Exists reports whether anything, file or directory, is at p.
func Exists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}
