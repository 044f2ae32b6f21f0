package icon

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSize       = errors.New("invalid icon size")
	ErrInvalidFraction   = errors.New("invalid fraction")
	ErrNoImages          = errors.New("no input images")
	ErrUnknownPlatform   = errors.New("unknown platform")
	ErrMissingContents   = errors.New("no contents json file specified")
	ErrMalformedContents = errors.New("malformed contents json")
	ErrUnsafeFilename    = errors.New("unsafe output filename")
	ErrMalformedICO      = errors.New("malformed ico file")
)

// UnresolvableSizeError is returned when a requested size has no exactly
// matching input and resizing is disabled. It aborts the whole run.
type UnresolvableSizeError struct {
	Size int
}

func (e *UnresolvableSizeError) Error() string {
	return fmt.Sprintf("size %d was requested but no input image of this size was provided, allow resizing to generate it", e.Size)
}

// IOError reports a failure to open, read or write a required file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	err := e.Err
	// os errors already carry their own op and path.
	var pe *os.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ValidateSize checks that size fits in an ICO directory entry.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return errors.Wrapf(ErrInvalidSize, "%d is outside [%d,%d]", size, MinSize, MaxSize)
	}
	return nil
}

func validateFraction(name string, v float64) error {
	if v < 0 || v > MaxFraction || v != v {
		return errors.Wrapf(ErrInvalidFraction, "%s %g is outside [0,%g]", name, v, MaxFraction)
	}
	return nil
}
