// Package art converts images into character art.
//
// A Converter runs the pipeline: decode the image, resolve the output grid,
// resample with nearest-neighbor interpolation, adjust the contrast and write
// one glyph per sampled pixel.
package art

import (
	"context"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/termascii/cell"
	"github.com/srlehn/termascii/geometry"
	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/internal/logx"
	"github.com/srlehn/termascii/render"
	"github.com/srlehn/termascii/source"
)

var _ logx.LoggerProvider = (*Converter)(nil)

// Converter holds the settings of a conversion. It can be reused for several images.
type Converter struct {
	scale      uint8
	contrast   int8
	policy     cell.Policy
	threads    int
	resizer    source.Resizer
	sizer      geometry.Sizer
	profile    termenv.Profile
	profileSet bool
	logger     *slog.Logger
}

// New returns a Converter configured by DefaultOptions followed by opts.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{}
	if err := c.SetOptions(append(Options{DefaultOptions}, opts...)...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Converter) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

// Prepare decodes img and resamples it to the output grid.
// The returned image has one pixel per glyph.
func (c *Converter) Prepare(img image.Image) (image.Image, geometry.Geometry, error) {
	if c == nil {
		return nil, geometry.Geometry{}, errors.NilReceiver()
	}
	if img == nil {
		return nil, geometry.Geometry{}, errors.New(consts.ErrNilImage)
	}
	src, err := logx.TimeIt2(func() (image.Image, error) {
		return source.NewImage(img).Image()
	}, `decode`, c)
	if err != nil {
		return nil, geometry.Geometry{}, err
	}
	geom, err := geometry.Resolve(src.Bounds().Size(), c.scale, c.sizer, c)
	if err != nil {
		return nil, geometry.Geometry{}, err
	}
	if geom.Empty() {
		return image.NewNRGBA(image.Rectangle{}), geom, nil
	}
	if geom.NeedsResize() {
		src, err = logx.TimeIt2(func() (image.Image, error) {
			return source.Resize(src, geom.Target, c.resizer)
		}, `resize`, c, `target`, geom.Target)
		if err != nil {
			return nil, geometry.Geometry{}, err
		}
	}
	// contrast is a per pixel mapping, applying it after the resampling gives the same result
	if c.contrast != 0 {
		err = logx.TimeIt(func() error {
			src = source.Contrast(src, c.contrast)
			return nil
		}, `contrast`, c, `contrast`, c.contrast)
		if err != nil {
			return nil, geometry.Geometry{}, err
		}
	}
	return src, geom, nil
}

// Render converts img and writes the result to w.
func (c *Converter) Render(ctx context.Context, img image.Image, w io.Writer) error {
	if c == nil {
		return errors.NilReceiver()
	}
	m, geom, err := c.Prepare(img)
	if err != nil {
		return err
	}
	if geom.Empty() {
		logx.Info(`nothing to draw`, c, `source`, geom.Source, `target`, geom.Target)
		return nil
	}
	rw := render.NewWriter(w, c.outputProfile(w), c.policy.Color)
	return logx.TimeIt(func() error {
		if c.threads == 1 {
			return render.Sequential(m, c.policy, rw)
		}
		return render.Parallel(ctx, m, c.policy, c.threads, rw)
	}, `render`, c, `cells`, geom.Pixels(), `threads`, c.threads, `colored`, rw.Colored())
}

// RenderFile decodes the image file at path and writes the result to w.
func (c *Converter) RenderFile(ctx context.Context, path string, w io.Writer) error {
	if len(path) == 0 {
		return errors.New(`no image path`)
	}
	return c.Render(ctx, source.NewImageFilename(path), w)
}

// String returns the converted image.
func (c *Converter) String(ctx context.Context, img image.Image) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, img, &sb); err != nil {
		return ``, err
	}
	return sb.String(), nil
}

func (c *Converter) outputProfile(w io.Writer) termenv.Profile {
	if c.profileSet {
		return c.profile
	}
	if f, ok := w.(*os.File); ok {
		return render.DetectProfile(f)
	}
	return termenv.Ascii
}
