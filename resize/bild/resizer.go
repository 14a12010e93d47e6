package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/termascii/source"
)

const Name = `bild`

func init() { source.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ source.Resizer = (*Resizer)(nil)

// Resize ...
// bild works on premultiplied colors, straight alpha is restored by source.ResizeStraight.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return source.ResizeStraight(img, size, func(img image.Image, size image.Point) image.Image {
		return transform.Resize(img, size.X, size.Y, transform.NearestNeighbor)
	})
}
