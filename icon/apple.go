package icon

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PackageApple writes one PNG per complete descriptor entry into outDir,
// then copies the descriptor itself to outDir/Contents.json. Incomplete
// entries produce nothing.
func PackageApple(r *Resolver, contentsPath, outDir string) ([]Artifact, error) {
	f, err := os.Open(contentsPath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: contentsPath, Err: err}
	}
	defer f.Close()

	if err := makeDir(outDir); err != nil {
		return nil, err
	}

	var artifacts []Artifact
	index := 0
	err = ScanContents(f, func(e ContentsEntry) error {
		index++
		if !e.Complete() {
			r.log.Warnf("%s: image %d lacks a filename, size or scale and is skipped", contentsPath, index)
			return nil
		}
		if err := checkFilename(e.Filename); err != nil {
			return err
		}
		img, err := r.Resolve(e.Pixels())
		if err != nil {
			return errors.Wrapf(err, "%s", e.Filename)
		}
		a, err := savePNG(filepath.Join(outDir, e.Filename), img)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	dst := filepath.Join(outDir, ContentsName)
	if samePath(contentsPath, dst) {
		return artifacts, nil
	}
	data, err := os.ReadFile(contentsPath)
	if err != nil {
		return nil, &IOError{Op: "read", Path: contentsPath, Err: err}
	}
	a, err := writeArtifact(dst, data)
	if err != nil {
		return nil, err
	}
	return append(artifacts, a), nil
}

// checkFilename keeps descriptor file names inside the output directory.
func checkFilename(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return errors.Wrapf(ErrUnsafeFilename, "%q", name)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
