//go:build !windows

package utils

import "os"

func IsIgnoreFile(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}
