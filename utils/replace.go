package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hymkor/trash-go"
)

// RemoveOutput clears a previous output at p, a file or a whole directory
// tree. With useTrash the old output goes to the recycle bin instead.
// A non-empty keep inside p survives together with the directories leading
// to it; everything else under p is removed.
func RemoveOutput(p string, useTrash bool, keep string) error {
	if !Exists(p) {
		return nil
	}
	remove := os.RemoveAll
	if useTrash {
		remove = func(fp string) error { return trash.Throw(fp) }
	}

	rel, ok := within(p, keep)
	if !ok {
		return remove(p)
	}
	return removeExcept(p, strings.Split(rel, string(filepath.Separator)), remove)
}

// removeExcept removes every entry of dir except the chain named by keep.
func removeExcept(dir string, keep []string, remove func(string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fp := filepath.Join(dir, e.Name())
		if e.Name() != keep[0] {
			if err := remove(fp); err != nil {
				return err
			}
			continue
		}
		if len(keep) > 1 && e.IsDir() {
			if err := removeExcept(fp, keep[1:], remove); err != nil {
				return err
			}
		}
	}
	return nil
}

// within returns keep relative to dir when keep lies strictly inside dir.
func within(dir, keep string) (string, bool) {
	if keep == "" {
		return "", false
	}
	rel, err := filepath.Rel(ParseOutputPath(dir), ParseOutputPath(keep))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", false
	}
	return rel, true
}
