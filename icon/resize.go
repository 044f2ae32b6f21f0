package icon

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used by Resize and padding.
type Filter int

const (
	// FilterLinear is a triangle kernel applied in linear light.
	FilterLinear Filter = iota
	// FilterCatmullRom is a bicubic kernel applied in linear light.
	FilterCatmullRom
	// FilterLanczos is Lanczos3 applied directly to sRGB values.
	FilterLanczos
)

var filterNames = map[Filter]string{
	FilterLinear:     "linear",
	FilterCatmullRom: "catmullrom",
	FilterLanczos:    "lanczos",
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter maps a filter name to its Filter. The empty string selects
// FilterLinear.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterLinear, nil
	}
	for f, name := range filterNames {
		if name == s {
			return f, nil
		}
	}
	return FilterLinear, errors.Errorf("unknown filter %q", s)
}

// Resize returns a new w×h copy of img. The source is left untouched.
func Resize(img *Image, w, h int, f Filter) *Image {
	if w <= 0 || h <= 0 {
		return NewImage(img.Name, max(w, 0), max(h, 0))
	}
	if img.Width() == w && img.Height() == h {
		return img.Clone()
	}

	switch f {
	case FilterLanczos:
		return FromImage(img.Name, resize.Resize(uint(w), uint(h), img.RGBA, resize.Lanczos3))
	case FilterCatmullRom:
		return scaleLinear(img, w, h, draw.CatmullRom)
	default:
		return scaleLinear(img, w, h, draw.BiLinear)
	}
}

// scaleLinear resamples in premultiplied linear light so that blending
// across edges does not darken the result.
func scaleLinear(img *Image, w, h int, k *draw.Kernel) *Image {
	src := toLinear(img.RGBA)
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	k.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return &Image{Name: img.Name, RGBA: fromLinear(dst)}
}

var (
	srgbToLinear = buildSRGBToLinear()
	linearToSRGB = buildLinearToSRGB()
)

func buildSRGBToLinear() (t [256]uint16) {
	for i := range t {
		v := float64(i) / 255
		if v <= 0.04045 {
			v /= 12.92
		} else {
			v = math.Pow((v+0.055)/1.055, 2.4)
		}
		t[i] = uint16(math.Round(v * 0xffff))
	}
	return t
}

// buildLinearToSRGB is indexed by the top 12 bits of a 16-bit linear value.
func buildLinearToSRGB() (t [4096]uint8) {
	for i := range t {
		v := (float64(i<<4) + 8) / 0xffff
		if v <= 0.0031308 {
			v *= 12.92
		} else {
			v = 1.055*math.Pow(v, 1/2.4) - 0.055
		}
		t[i] = uint8(math.Round(math.Min(v, 1) * 255))
	}
	return t
}

func toLinear(src *image.NRGBA) *image.RGBA64 {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*8]
		for x := 0; x < w; x++ {
			a := uint32(s[x*4+3]) * 0x101
			for c := 0; c < 3; c++ {
				v := uint32(srgbToLinear[s[x*4+c]]) * a / 0xffff
				d[x*8+c*2] = uint8(v >> 8)
				d[x*8+c*2+1] = uint8(v)
			}
			d[x*8+6] = uint8(a >> 8)
			d[x*8+7] = uint8(a)
		}
	}
	return dst
}

func fromLinear(src *image.RGBA64) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w*8]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			a := uint32(s[x*8+6])<<8 | uint32(s[x*8+7])
			if a == 0 {
				continue
			}
			for c := 0; c < 3; c++ {
				v := uint32(s[x*8+c*2])<<8 | uint32(s[x*8+c*2+1])
				v = min(v*0xffff/a, 0xffff)
				d[x*4+c] = linearToSRGB[v>>4]
			}
			d[x*4+3] = uint8((a + 0x80) / 0x101)
		}
	}
	return dst
}
