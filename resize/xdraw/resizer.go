// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/termascii/source"
)

// Name is the name the resizer is registered under.
const Name = `xdraw`

func init() { source.RegisterResizer(Name, NearestNeighbor()) }

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ source.Resizer = (*resizer)(nil)

// NearestNeighbor creates a resizer that copies the closest source pixel.
func NearestNeighbor() source.Resizer {
	return &resizer{scaler: draw.NearestNeighbor}
}

// Resize scales an image to the target size using the configured scaler.
// The scaler draws premultiplied colors, straight alpha is restored by source.ResizeStraight.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return source.ResizeStraight(img, size, r.scale)
}

func (r *resizer) scale(img image.Image, size image.Point) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
