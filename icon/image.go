// Package icon turns decoded source images into platform icon bundles:
// a Windows ICO container, an Android mipmap tree or an Apple iconset.
package icon

import (
	"image"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	MinSize = 1
	MaxSize = 256
)

// Image is a decoded RGBA8 raster. The pixel data is non-premultiplied and
// always anchored at the origin.
type Image struct {
	Name string
	RGBA *image.NRGBA
}

// NewImage returns a fully transparent w×h image.
func NewImage(name string, w, h int) *Image {
	return &Image{Name: name, RGBA: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// FromImage copies src into a new RGBA8 buffer.
func FromImage(name string, src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return &Image{Name: name, RGBA: dst}
}

// Decode reads an image in any registered format.
func Decode(name string, r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	if src.Bounds().Empty() {
		return nil, errors.Errorf("decode %s: empty image", name)
	}
	return FromImage(name, src), nil
}

// Load opens and decodes the image at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return Decode(path, f)
}

func (m *Image) Width() int  { return m.RGBA.Rect.Dx() }
func (m *Image) Height() int { return m.RGBA.Rect.Dy() }

// Is reports whether the image is exactly size×size.
func (m *Image) Is(size int) bool {
	return m.Width() == size && m.Height() == size
}

func (m *Image) Area() int { return m.Width() * m.Height() }

func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.RGBA.Pix))
	copy(pix, m.RGBA.Pix)
	return &Image{
		Name: m.Name,
		RGBA: &image.NRGBA{Pix: pix, Stride: m.RGBA.Stride, Rect: m.RGBA.Rect},
	}
}
