package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// MaxFraction is the upper bound for radius and padding fractions.
const MaxFraction = 0.5

// Transform is applied to every loaded image before packaging, radius
// first and then padding.
type Transform struct {
	Radius  float64 `yaml:"radius"`
	Padding float64 `yaml:"padding"`
}

func (t Transform) Validate() error {
	if err := validateFraction("radius", t.Radius); err != nil {
		return err
	}
	return validateFraction("padding", t.Padding)
}

// Apply modifies img in place. Padding resamples the already masked
// image, so the order is fixed.
func (t Transform) Apply(img *Image, f Filter) {
	ApplyCornerRadius(img, t.Radius)
	ApplyPadding(img, t.Padding, f)
}

// ApplyCornerRadius clears every pixel that lies outside the quarter circle
// of radius width×fraction in each corner. A fraction of 0.5 leaves only the
// inscribed circle.
func ApplyCornerRadius(img *Image, fraction float64) {
	if fraction <= 0 {
		return
	}
	fraction = min(fraction, MaxFraction)

	w, h := img.Width(), img.Height()
	r := int(float64(w) * fraction)
	left, top := r, int(float64(h)*fraction)
	right, bottom := w-left, h-top

	// top left
	clearOutside(img.RGBA, left, top, image.Rect(0, 0, left, top), r*r)
	// bottom left
	clearOutside(img.RGBA, left, bottom, image.Rect(0, bottom, left, h), r*r)
	// top right
	clearOutside(img.RGBA, right, top, image.Rect(right, 0, w, top), r*r)
	// bottom right
	clearOutside(img.RGBA, right, bottom, image.Rect(right, bottom, w, h), r*r)
}

func clearOutside(m *image.NRGBA, cx, cy int, rect image.Rectangle, r2 int) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy > r2 {
				i := m.PixOffset(x, y)
				clear(m.Pix[i : i+4])
			}
		}
	}
}

// ApplyPadding shrinks the artwork to (1-2×fraction) of each dimension and
// centres it on a transparent canvas of the original size.
func ApplyPadding(img *Image, fraction float64, f Filter) {
	if fraction <= 0 {
		return
	}
	fraction = min(fraction, MaxFraction)

	w, h := img.Width(), img.Height()
	innerW := int((1 - 2*fraction) * float64(w))
	innerH := int((1 - 2*fraction) * float64(h))
	offX := int(fraction * float64(w))
	offY := int(fraction * float64(h))

	var inner *Image
	if innerW > 0 && innerH > 0 {
		inner = Resize(img, innerW, innerH, f)
	}
	clear(img.RGBA.Pix)
	if inner == nil {
		return
	}
	draw.Draw(img.RGBA, image.Rect(offX, offY, offX+innerW, offY+innerH), inner.RGBA, image.Point{}, draw.Src)
}
