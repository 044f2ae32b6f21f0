package icon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestResizeDimensions(t *testing.T) {
	src := pattern("p", 64)
	for _, f := range []Filter{FilterLinear, FilterCatmullRom, FilterLanczos} {
		for _, size := range [][2]int{{1, 1}, {16, 16}, {31, 17}, {128, 128}} {
			out := Resize(src, size[0], size[1], f)
			assert.Equal(t, size[0], out.Width(), "%v %v", f, size)
			assert.Equal(t, size[1], out.Height(), "%v %v", f, size)
			assert.Len(t, out.RGBA.Pix, size[0]*size[1]*4)
		}
	}
}

func TestResizeKeepsSource(t *testing.T) {
	src := pattern("p", 64)
	want := src.Clone()
	_ = Resize(src, 20, 20, FilterLinear)
	assert.Equal(t, want.RGBA.Pix, src.RGBA.Pix)

	same := Resize(src, 64, 64, FilterLinear)
	assert.NotSame(t, src.RGBA, same.RGBA)
	assert.Equal(t, src.RGBA.Pix, same.RGBA.Pix)
}

func TestResizeUniformColour(t *testing.T) {
	for _, c := range []color.NRGBA{opaque, {R: 1, G: 2, B: 3, A: 255}, {R: 255, G: 255, B: 255, A: 255}, {R: 90, G: 180, B: 30, A: 128}} {
		for _, f := range []Filter{FilterLinear, FilterCatmullRom} {
			out := Resize(solid("s", 48, 48, c), 20, 20, f)
			for y := 0; y < 20; y++ {
				for x := 0; x < 20; x++ {
					got := out.RGBA.NRGBAAt(x, y)
					if !near(got.R, c.R) || !near(got.G, c.G) || !near(got.B, c.B) || !near(got.A, c.A) {
						t.Fatalf("%v: pixel (%d,%d) = %v, want about %v", f, x, y, got, c)
					}
				}
			}
		}
	}
}

func TestResizeTransparent(t *testing.T) {
	out := Resize(NewImage("t", 40, 40), 13, 13, FilterLinear)
	assert.Equal(t, make([]uint8, 13*13*4), out.RGBA.Pix)
}

// Averaging black and white in linear light gives a lighter grey than
// averaging the sRGB values.
func TestResizeGammaAware(t *testing.T) {
	src := NewImage("checker", 2, 1)
	src.RGBA.SetNRGBA(0, 0, color.NRGBA{A: 255})
	src.RGBA.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := Resize(src, 1, 1, FilterLinear)
	got := out.RGBA.NRGBAAt(0, 0)
	assert.InDelta(t, 188, int(got.R), 2)
	assert.Equal(t, uint8(255), got.A)
}

func TestResizeEmpty(t *testing.T) {
	out := Resize(pattern("p", 8), 0, 5, FilterLinear)
	assert.Equal(t, 0, out.Width())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"", FilterLinear},
		{"linear", FilterLinear},
		{"CatmullRom", FilterCatmullRom},
		{" lanczos ", FilterLanczos},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, filterNames[got], got.String())
	}

	_, err := ParseFilter("nearest")
	assert.Error(t, err)
}
