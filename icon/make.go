package icon

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type Platform string

const (
	PlatformWin32   Platform = "win32"
	PlatformOSX     Platform = "osx"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

var Platforms = []Platform{PlatformWin32, PlatformOSX, PlatformIOS, PlatformAndroid}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownPlatform, "%q", s)
}

// Apple reports whether the platform is packaged as an iconset.
func (p Platform) Apple() bool {
	return p == PlatformOSX || p == PlatformIOS
}

// Options drives one Make run.
type Options struct {
	Platform    Platform
	AllowResize bool
	// Sizes lists the ICO sizes in order; Android only uses Sizes[0].
	Sizes []int
	// Contents is the iconset descriptor, required for Apple platforms.
	Contents  string
	Output    string
	Transform Transform
	Filter    Filter
	Log       Logger
}

func (o *Options) Validate() error {
	if !slices.Contains(Platforms, o.Platform) {
		return errors.Wrapf(ErrUnknownPlatform, "%q", o.Platform)
	}
	if o.Output == "" {
		return errors.New("no output name provided")
	}
	if err := o.Transform.Validate(); err != nil {
		return err
	}
	if o.Platform.Apple() {
		if o.Contents == "" {
			return ErrMissingContents
		}
		return nil
	}
	if len(o.Sizes) == 0 {
		return errors.Wrap(ErrInvalidSize, "no icon sizes provided")
	}
	for _, size := range o.Sizes {
		if err := ValidateSize(size); err != nil {
			return err
		}
	}
	return nil
}

// Make transforms every image in place and writes the bundle for
// o.Platform. It stops at the first error; files already written are left
// as they are.
func Make(images []*Image, o Options) ([]Artifact, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	log := o.Log
	if log == nil {
		log = nopLogger{}
	}

	for _, img := range images {
		o.Transform.Apply(img, o.Filter)
	}

	r, err := NewResolver(images, o.AllowResize, o.Filter, log)
	if err != nil {
		return nil, err
	}

	switch o.Platform {
	case PlatformWin32:
		return PackageWindows(r, o.Sizes, o.Output)
	case PlatformAndroid:
		return PackageAndroid(r, o.Sizes[0], o.Output)
	default:
		return PackageApple(r, o.Contents, o.Output)
	}
}
