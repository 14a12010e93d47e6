package source

import (
	"image"
	"image/color"

	"github.com/srlehn/termascii/internal/errors"
)

// ResizeStraight runs resample on the straight color channels and on the alpha channel of img separately
// and merges both results.
//
// Resamplers that draw into premultiplied images lose the color of transparent pixels.
// Both views passed to resample are opaque, so nothing is lost as long as resample
// picks source pixels by position only, as nearest-neighbor interpolation does.
func ResizeStraight(img image.Image, size image.Point, resample func(img image.Image, size image.Point) image.Image) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if resample == nil {
		return nil, errors.NilParam()
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return resample(img, size), nil
	}
	rgb := resample(opaqueView{img}, size)
	alpha := resample(alphaView{img}, size)
	if rgb == nil || alpha == nil {
		return nil, errors.New(`resampler returned no image`)
	}
	if rgb.Bounds().Size() != size || alpha.Bounds().Size() != size {
		return nil, errors.Errorf(`resampler returned %v and %v, want %v`,
			rgb.Bounds().Size(), alpha.Bounds().Size(), size)
	}
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			px := PixelAt(rgb, x, y)
			px.A = PixelAt(alpha, x, y).R
			dst.SetNRGBA(x, y, px)
		}
	}
	return dst, nil
}

// opaqueView shows the straight color channels with full opacity.
type opaqueView struct{ image.Image }

func (v opaqueView) ColorModel() color.Model { return color.NRGBAModel }

func (v opaqueView) At(x, y int) color.Color {
	c := color.NRGBAModel.Convert(v.Image.At(x, y)).(color.NRGBA)
	c.A = 0xff
	return c
}

// alphaView shows the alpha channel as gray levels.
type alphaView struct{ image.Image }

func (v alphaView) ColorModel() color.Model { return color.GrayModel }

func (v alphaView) At(x, y int) color.Color {
	_, _, _, a := v.Image.At(x, y).RGBA()
	return color.Gray{Y: uint8(a >> 8)}
}
