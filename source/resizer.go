package source

import (
	"image"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
)

// Resizer resamples an image to size with nearest-neighbor interpolation.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

var (
	resizersMu         sync.RWMutex
	resizersRegistered = make(map[string]Resizer)
)

// RegisterResizer makes a resizer selectable by name.
func RegisterResizer(name string, rsz Resizer) {
	if rsz == nil || len(name) == 0 {
		return
	}
	resizersMu.Lock()
	defer resizersMu.Unlock()
	resizersRegistered[strings.ToLower(name)] = rsz
}

// GetRegResizerByName returns a registered resizer.
func GetRegResizerByName(name string) (Resizer, error) {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	rsz, ok := resizersRegistered[strings.ToLower(name)]
	if !ok || rsz == nil {
		return nil, errors.Errorf(`%w %q (registered: %s)`, consts.ErrUnknownResizer, name, strings.Join(resizerNames(), `, `))
	}
	return rsz, nil
}

// ResizerNames lists the names of the registered resizers in sorted order.
func ResizerNames() []string {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	return resizerNames()
}

func resizerNames() []string { return slices.Sorted(maps.Keys(resizersRegistered)) }

// Resize resamples img to size with rsz.
// img is returned unaltered if it already has that size,
// an empty image is returned if a side of size isn't positive.
func Resize(img image.Image, size image.Point, rsz Resizer) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return image.NewNRGBA(image.Rectangle{}), nil
	}
	if img.Bounds().Size() == size {
		return img, nil
	}
	if rsz == nil {
		return nil, errors.New(`nil resizer`)
	}
	m, err := rsz.Resize(img, size)
	if err != nil {
		return nil, errors.New(err)
	}
	if m == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if got := m.Bounds().Size(); got != size {
		return nil, errors.Errorf(`resizer returned %dx%d, want %dx%d`, got.X, got.Y, size.X, size.Y)
	}
	return m, nil
}
