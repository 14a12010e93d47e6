// Package testutil provides image fixtures for tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	Black = color.NRGBA{0, 0, 0, 255}
	White = color.NRGBA{255, 255, 255, 255}
)

// Uniform returns a w x h image filled with c.
func Uniform(w, h int, c color.NRGBA) *image.NRGBA {
	return Fill(w, h, func(int, int) color.NRGBA { return c })
}

// Fill returns a w x h image with the pixels returned by px.
func Fill(w, h int, px func(x, y int) color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, px(x, y))
		}
	}
	return m
}

// Gradient returns an opaque image where neighboring pixels differ.
func Gradient(w, h int) *image.NRGBA {
	return Fill(w, h, func(x, y int) color.NRGBA {
		v := uint8((x*13 + y*29) % 256)
		return color.NRGBA{v, v / 2, 255 - v, 255}
	})
}

// Checker returns a black and white checkerboard with a black top left pixel.
func Checker(w, h int) *image.NRGBA {
	return Fill(w, h, func(x, y int) color.NRGBA {
		if (x+y)%2 == 0 {
			return Black
		}
		return White
	})
}

func EncodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// WritePNG encodes img into a file in a temporary directory and returns its path.
func WritePNG(t testing.TB, img image.Image) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), `img.png`)
	require.NoError(t, os.WriteFile(fileName, EncodePNG(t, img), 0o644))
	return fileName
}
