package icon

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

// Payload is one PNG-encoded output image.
type Payload struct {
	Width  int
	Height int
	Data   []byte
}

// rgbaPNG makes image/png keep the alpha channel for opaque images, so
// every payload is stored as 8-bit RGBA.
type rgbaPNG struct{ *image.NRGBA }

func (rgbaPNG) Opaque() bool { return false }

// EncodePNG encodes img as a 32 bits per pixel RGBA PNG.
func EncodePNG(img *Image) (*Payload, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgbaPNG{img.RGBA}); err != nil {
		return nil, errors.Wrapf(err, "encode %dx%d png", img.Width(), img.Height())
	}
	return &Payload{Width: img.Width(), Height: img.Height(), Data: buf.Bytes()}, nil
}
