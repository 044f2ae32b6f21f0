package icon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCornerRadiusZero(t *testing.T) {
	img := pattern("p", 40)
	want := img.Clone()

	ApplyCornerRadius(img, 0)
	assert.Equal(t, want.RGBA.Pix, img.RGBA.Pix)

	ApplyCornerRadius(img, -0.2)
	assert.Equal(t, want.RGBA.Pix, img.RGBA.Pix)
}

func TestApplyCornerRadiusCircle(t *testing.T) {
	for _, fraction := range []float64{0.5, 0.9} {
		const size = 64
		img := solid("s", size, size, opaque)
		ApplyCornerRadius(img, fraction)

		c, r2 := size/2, (size/2)*(size/2)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				got := img.RGBA.NRGBAAt(x, y)
				if (c-x)*(c-x)+(c-y)*(c-y) > r2 {
					if got != (color.NRGBA{}) {
						t.Fatalf("fraction %g: pixel (%d,%d) = %v outside the circle, want zero", fraction, x, y, got)
					}
				} else if got != opaque {
					t.Fatalf("fraction %g: pixel (%d,%d) = %v inside the circle, want unchanged", fraction, x, y, got)
				}
			}
		}
	}
}

func TestApplyCornerRadiusPartial(t *testing.T) {
	img := solid("s", 100, 100, opaque)
	ApplyCornerRadius(img, 0.1)

	for _, p := range [][2]int{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		assert.Equal(t, color.NRGBA{}, img.RGBA.NRGBAAt(p[0], p[1]), "corner %v", p)
	}
	for _, p := range [][2]int{{50, 0}, {0, 50}, {99, 50}, {50, 99}, {50, 50}, {10, 10}} {
		assert.Equal(t, opaque, img.RGBA.NRGBAAt(p[0], p[1]), "pixel %v", p)
	}
}

func TestApplyPaddingBand(t *testing.T) {
	for _, p := range []float64{0.05, 0.1, 0.25, 0.3, 0.45} {
		for _, f := range []Filter{FilterLinear, FilterCatmullRom, FilterLanczos} {
			const w, h = 100, 80
			img := solid("s", w, h, opaque)
			ApplyPadding(img, p, f)

			bandX, bandY := int(p*w), int(p*h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if x < bandX || x >= w-bandX || y < bandY || y >= h-bandY {
						if a := img.RGBA.NRGBAAt(x, y).A; a != 0 {
							t.Fatalf("padding %g %v: alpha at (%d,%d) = %d, want 0", p, f, x, y, a)
						}
					}
				}
			}
			assert.Equal(t, uint8(255), img.RGBA.NRGBAAt(w/2, h/2).A, "padding %g %v: centre must keep the artwork", p, f)
			assert.Equal(t, w, img.Width())
			assert.Equal(t, h, img.Height())
		}
	}
}

func TestApplyPaddingLimits(t *testing.T) {
	img := pattern("p", 32)
	want := img.Clone()
	ApplyPadding(img, 0, FilterLinear)
	assert.Equal(t, want.RGBA.Pix, img.RGBA.Pix)

	for _, p := range []float64{0.5, 0.75} {
		img = solid("s", 32, 32, opaque)
		ApplyPadding(img, p, FilterLinear)
		assert.Equal(t, make([]uint8, 32*32*4), img.RGBA.Pix, "padding %g leaves no room for artwork", p)
	}
}

func TestTransformApplyOrder(t *testing.T) {
	// With radius 0.5 then padding 0.25, the shrunk artwork is a circle, so
	// the corners of the inner box are transparent too.
	img := solid("s", 64, 64, opaque)
	Transform{Radius: 0.5, Padding: 0.25}.Apply(img, FilterLinear)

	assert.Equal(t, uint8(0), img.RGBA.NRGBAAt(16, 16).A)
	assert.Equal(t, uint8(0), img.RGBA.NRGBAAt(47, 47).A)
	assert.Equal(t, uint8(255), img.RGBA.NRGBAAt(32, 32).A)
}

func TestTransformValidate(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		ok   bool
	}{
		{"zero", Transform{}, true},
		{"max", Transform{Radius: 0.5, Padding: 0.5}, true},
		{"negative radius", Transform{Radius: -0.1}, false},
		{"large padding", Transform{Padding: 0.6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidFraction)
			}
		})
	}
}
