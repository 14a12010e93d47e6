// Package rdefault provides the default resizer.
package rdefault

import (
	"image"

	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/resize/imaging"
	"github.com/srlehn/termascii/source"
)

type Resizer struct{}

var _ source.Resizer = (*Resizer)(nil)

// imaging keeps straight alpha without a second pass
var fallback = &imaging.Resizer{}

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	im := img
	// decode lazily loaded images before handing them over
	if it, ok := im.(*source.Image); ok {
		if err := it.Decode(); err != nil {
			return nil, err
		}
		if it.Original == nil {
			return nil, errors.New(consts.ErrNilImage)
		}
		im = it.Original
	}
	return fallback.Resize(im, size)
}
