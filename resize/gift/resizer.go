package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/termascii/source"
)

const Name = `gift`

func init() { source.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	// Parallel lets gift spread the work over several goroutines.
	Parallel bool
}

var _ source.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	g := gift.New(gift.Resize(size.X, size.Y, gift.NearestNeighborResampling))
	g.SetParallelization(r.Parallel)
	m := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(m, img)
	return m, nil
}
