package icon

import (
	"os"
	"path/filepath"

	"github.com/amalfra/etag/v3"
)

// Artifact describes one file written by a packager.
type Artifact struct {
	Path string
	Size int
	ETag string
}

func writeArtifact(path string, data []byte) (Artifact, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Artifact{}, &IOError{Op: "write", Path: path, Err: err}
	}
	return Artifact{Path: path, Size: len(data), ETag: etag.Generate(string(data), true)}, nil
}

func savePNG(path string, img *Image) (Artifact, error) {
	p, err := EncodePNG(img)
	if err != nil {
		return Artifact{}, err
	}
	return writeArtifact(path, p.Data)
}

func makeDir(dir string) error {
	if err := os.MkdirAll(filepath.Clean(dir), 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}
