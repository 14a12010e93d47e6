package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/termascii/source"
)

const Name = `imaging`

func init() { source.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct{}

var _ source.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(img, size.X, size.Y, imaging.NearestNeighbor), nil
}
