package utils

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ListFiles returns the regular files directly inside dir, skipping the
// ones IsIgnoreFile rejects. Subdirectories are not entered.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		info, err := e.Info()
		if err != nil || IsIgnoreFile(info) || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// ReadFileList reads one path per line and keeps the lines that name an
// existing regular file.
func ReadFileList(listPath string) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var files []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if info, err := os.Stat(line); err == nil && info.Mode().IsRegular() {
			files = append(files, line)
		}
	}
	return files, sc.Err()
}
