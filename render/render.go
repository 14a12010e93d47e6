// Package render turns a resampled image into rows of glyphs.
//
// Sequential streams cells while they are computed. Parallel computes all
// cells into a buffer with several workers first and writes them afterwards,
// the output is identical.
package render

import (
	"context"
	"fmt"
	"image"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/srlehn/termascii/cell"
	"github.com/srlehn/termascii/geometry"
	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/source"
)

// Cells yields the cells of img in row-major order.
func Cells(img image.Image, p cell.Policy) iter.Seq[cell.Cell] {
	return func(yield func(cell.Cell) bool) {
		if img == nil {
			return
		}
		size := img.Bounds().Size()
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				if !yield(p.CellNRGBA(source.PixelAt(img, x, y))) {
					return
				}
			}
		}
	}
}

// Stream writes cells and a line break after every width-th cell.
// Nothing is written for a width below 1.
func Stream(cells iter.Seq[cell.Cell], width int, w *Writer) error {
	if w == nil {
		return errors.NilParam()
	}
	if width <= 0 || cells == nil {
		return nil
	}
	var i int
	for c := range cells {
		if err := w.WriteCell(c); err != nil {
			return err
		}
		i++
		if i%width == 0 {
			if err := w.EndLine(); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// Sequential renders img cell by cell without buffering the grid.
func Sequential(img image.Image, p cell.Policy, w *Writer) error {
	img, err := decoded(img)
	if err != nil {
		return err
	}
	return Stream(Cells(img, p), img.Bounds().Dx(), w)
}

// Parallel renders img with up to workers goroutines.
// A workers value below 1 uses one worker per CPU.
func Parallel(ctx context.Context, img image.Image, p cell.Policy, workers int, w *Writer) error {
	if w == nil {
		return errors.NilParam()
	}
	buf, err := Compute(ctx, img, p, workers)
	if err != nil {
		return err
	}
	return WriteBuffer(buf, w)
}

// Compute maps every pixel of img to a cell.
//
// The returned buffer is row-major with width+1 cells per row, the last cell
// of each row is a row terminator. The rows are split into contiguous ranges,
// one per worker, the last range takes the remainder. Workers write disjoint
// index ranges of the buffer. A panicking worker fails the whole computation,
// as does any cell that was left unset.
func Compute(ctx context.Context, img image.Image, p cell.Policy, workers int) ([]cell.Cell, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	img, err := decoded(img)
	if err != nil {
		return nil, err
	}
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, nil
	}
	if err := geometry.CheckSize(size); err != nil {
		return nil, err
	}
	stride := size.X + 1
	buf := make([]cell.Cell, stride*size.Y)

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, size.Y)
	rowsPerWorker := size.Y / workers

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		start := i * rowsPerWorker
		end := start + rowsPerWorker
		if i == workers-1 {
			end = size.Y
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Recovered(r, fmt.Sprintf(`render worker %d (rows %d-%d)`, i, start, end-1))
				}
			}()
			for y := start; y < end; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := buf[y*stride : (y+1)*stride]
				for x := 0; x < size.X; x++ {
					row[x] = p.CellNRGBA(source.PixelAt(img, x, y))
				}
				row[size.X] = cell.EndOfLine()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := checkComplete(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteBuffer writes a buffer produced by Compute.
// Nothing is written when a cell of buf is unset.
func WriteBuffer(buf []cell.Cell, w *Writer) error {
	if w == nil {
		return errors.NilParam()
	}
	if err := checkComplete(buf); err != nil {
		return err
	}
	for _, c := range buf {
		if err := w.WriteCell(c); err != nil {
			return err
		}
	}
	return w.Flush()
}

func checkComplete(buf []cell.Cell) error {
	for i, c := range buf {
		if !c.IsSet() {
			return errors.Errorf(`%w: cell %d of %d`, consts.ErrIncomplete, i, len(buf))
		}
	}
	return nil
}

// decoded makes sure lazily loaded images are decoded before they are
// shared between goroutines.
func decoded(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if m, ok := img.(*source.Image); ok {
		return m.Image()
	}
	return img, nil
}
