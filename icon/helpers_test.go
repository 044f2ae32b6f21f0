package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var opaque = color.NRGBA{R: 200, G: 100, B: 50, A: 255}

func solid(name string, w, h int, c color.NRGBA) *Image {
	img := NewImage(name, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.RGBA.SetNRGBA(x, y, c)
		}
	}
	return img
}

// pattern gives every pixel a distinct-ish value so identity checks mean
// something.
func pattern(name string, size int) *Image {
	img := NewImage(name, size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.RGBA.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: uint8(255 - (x+y)%64)})
		}
	}
	return img
}

func decodePNG(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()
	m, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	nrgba, ok := m.(*image.NRGBA)
	require.True(t, ok, "expected an RGBA png, got %T", m)
	return nrgba
}

func readPNG(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return decodePNG(t, data)
}

type captureLogger struct {
	infos, warns []string
}

func (l *captureLogger) Printf(format string, params ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, params...))
}

func (l *captureLogger) Warnf(format string, params ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, params...))
}
