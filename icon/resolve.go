package icon

// Logger is the subset of utils.Logger used by the engine.
type Logger interface {
	Printf(format string, params ...any)
	Warnf(format string, params ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

// Resolver picks the image used for each requested output size.
// Images handed to it must not be modified while it is in use.
type Resolver struct {
	images      []*Image
	largest     *Image
	allowResize bool
	filter      Filter
	log         Logger
}

// NewResolver indexes images in input order. The largest image by pixel area
// is the resize source; on equal area the later image wins.
func NewResolver(images []*Image, allowResize bool, f Filter, log Logger) (*Resolver, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if log == nil {
		log = nopLogger{}
	}
	r := &Resolver{images: images, allowResize: allowResize, filter: f, log: log}
	for i, img := range images {
		if img.Width() != img.Height() {
			log.Warnf("image file '%s' is not square and will be stretched", img.Name)
		}
		for _, prev := range images[:i] {
			if prev.Width() == img.Width() && prev.Height() == img.Height() {
				log.Warnf("image files '%s' and '%s' have the same size of %dx%d, only '%s' is used",
					prev.Name, img.Name, img.Width(), img.Height(), prev.Name)
				break
			}
		}
		if r.largest == nil || img.Area() >= r.largest.Area() {
			r.largest = img
		}
	}
	return r, nil
}

// Largest returns the image used as the resize source.
func (r *Resolver) Largest() *Image { return r.largest }

// Resolve returns the first input that is exactly size×size, unmodified and
// shared with the caller. Without a match it returns a resized copy of the
// largest input, or an *UnresolvableSizeError when resizing is disabled.
func (r *Resolver) Resolve(size int) (*Image, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	for _, img := range r.images {
		if img.Is(size) {
			return img, nil
		}
	}
	if !r.allowResize {
		return nil, &UnresolvableSizeError{Size: size}
	}
	r.log.Printf("resizing '%s' (%dx%d) to %dx%d", r.largest.Name, r.largest.Width(), r.largest.Height(), size, size)
	return Resize(r.largest, size, size, r.filter), nil
}

// ResolvePNG resolves size and encodes the result.
func (r *Resolver) ResolvePNG(size int) (*Payload, error) {
	img, err := r.Resolve(size)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}
