package utils

import (
	"os"
	"strings"
	"syscall"
)

func IsIgnoreFile(info os.FileInfo) bool {
	if strings.HasSuffix(info.Name(), ".lnk") {
		return true
	}
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return true
	}
	return stat.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0 ||
		stat.FileAttributes&syscall.FILE_ATTRIBUTE_SYSTEM != 0
}
