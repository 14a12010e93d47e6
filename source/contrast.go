package source

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// ContrastLUT returns the channel mapping for a contrast change of c.
// Each channel v becomes ((v/255-0.5)*((100+c)/100)^2+0.5)*255, clamped and truncated.
func ContrastLUT(c int8) [256]uint8 {
	var lut [256]uint8
	if c == 0 {
		// skip the float math, it doesn't round trip for every channel value
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}
	percent := math.Pow((100+float64(c))/100, 2)
	for i := range lut {
		v := ((float64(i)/255-0.5)*percent + 0.5) * 255
		lut[i] = uint8(math.Max(0, math.Min(255, v)))
	}
	return lut
}

// Contrast changes the contrast of img by c (-128..127).
// The color channels are transformed on straight alpha values, alpha is kept.
// A zero change returns img unaltered.
func Contrast(img image.Image, c int8) image.Image {
	if img == nil || c == 0 {
		return img
	}
	lut := ContrastLUT(c)
	return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
		return color.NRGBA{R: lut[px.R], G: lut[px.G], B: lut[px.B], A: px.A}
	})
}
