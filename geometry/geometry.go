// Package geometry resolves the size of the sampled grid.
package geometry

import (
	"image"
	"math"

	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/internal/logx"
)

// CellsPerPixel is the number of terminal columns taken by one sampled pixel (glyph and space).
const CellsPerPixel = 2

// Sizer reports the terminal size in cells.
type Sizer interface {
	SizeInCells() (cols, rows uint, err error)
}

// Geometry maps the source image size onto the size of the output grid.
type Geometry struct {
	Source image.Point
	Target image.Point
}

// Empty reports whether nothing will be drawn.
func (g Geometry) Empty() bool { return g.Target.X <= 0 || g.Target.Y <= 0 }

// NeedsResize reports whether the source has to be resampled.
func (g Geometry) NeedsResize() bool { return g.Source != g.Target }

// Pixels returns the number of sampled pixels.
func (g Geometry) Pixels() uint64 {
	if g.Empty() {
		return 0
	}
	return uint64(g.Target.X) * uint64(g.Target.Y)
}

// Resolve computes the target size for src.
//
// A nonzero scale is a percentage applied to both sides and rounded half away from zero.
// Scale 0 fits src into the terminal reported by sizer, keeping the aspect ratio.
// When the terminal size is unavailable a box of consts.FallbackCols x consts.FallbackRows
// cells is used and a warning is logged.
func Resolve(src image.Point, scale uint8, sizer Sizer, loggerProv logx.LoggerProvider) (Geometry, error) {
	if src.X < 0 || src.Y < 0 {
		return Geometry{}, errors.Errorf(`negative source size %dx%d`, src.X, src.Y)
	}
	g := Geometry{Source: src}
	if scale != 0 {
		g.Target = Scale(src, scale)
	} else {
		cols, rows := terminalBox(sizer, loggerProv)
		g.Target = Fit(src, image.Pt(int(cols)/CellsPerPixel, int(rows)))
	}
	if err := CheckSize(g.Target); err != nil {
		return Geometry{}, err
	}
	logx.Debug(`geometry resolved`, loggerProv, `source`, g.Source, `target`, g.Target, `scale`, scale)
	return g, nil
}

func terminalBox(sizer Sizer, loggerProv logx.LoggerProvider) (cols, rows uint) {
	if sizer == nil {
		logx.Warn(`no terminal size provider, using default size`, loggerProv,
			`cols`, consts.FallbackCols, `rows`, consts.FallbackRows)
		return consts.FallbackCols, consts.FallbackRows
	}
	cols, rows, err := sizer.SizeInCells()
	if err != nil {
		logx.Warn(`terminal size unavailable, using default size`, loggerProv,
			`cols`, consts.FallbackCols, `rows`, consts.FallbackRows, `err`, err)
		return consts.FallbackCols, consts.FallbackRows
	}
	return cols, rows
}

// Scale multiplies both sides of src by scale percent.
func Scale(src image.Point, scale uint8) image.Point {
	f := float64(scale) / 100
	return image.Pt(
		int(math.Round(float64(src.X)*f)),
		int(math.Round(float64(src.Y)*f)),
	)
}

// Fit returns the largest size with the aspect ratio of src that fits into bounds.
// Sides are rounded and at least 1 unless src or bounds are empty.
func Fit(src, bounds image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || bounds.X <= 0 || bounds.Y <= 0 {
		return image.Point{}
	}
	ratio := math.Min(
		float64(bounds.X)/float64(src.X),
		float64(bounds.Y)/float64(src.Y),
	)
	pt := image.Pt(
		int(math.Round(float64(src.X)*ratio)),
		int(math.Round(float64(src.Y)*ratio)),
	)
	pt.X = max(1, min(pt.X, bounds.X))
	pt.Y = max(1, min(pt.Y, bounds.Y))
	return pt
}

// CheckSize fails with consts.ErrImageTooLarge if the grid of size, including
// one row terminator per row, can't be counted with 32 bits.
func CheckSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if (uint64(size.X)+1)*uint64(size.Y) > math.MaxUint32 {
		return errors.Errorf(`%w: %dx%d pixels`, consts.ErrImageTooLarge, size.X, size.Y)
	}
	return nil
}
