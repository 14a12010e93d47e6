// Package source decodes images and prepares them for sampling.
//
// The decoders for png, jpeg, gif, bmp, tiff and webp are registered by this package.
// Only the first frame of animated images is used.
package source

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
)

// Image is an image that is decoded on first use.
type Image struct {
	Original image.Image
	FileName string // lazily loaded
	Encoded  []byte // lazily loaded
	Format   string
}

var _ image.Image = (*Image)(nil)

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	if m, ok := img.(*Image); ok {
		return m
	}
	return &Image{Original: img}
}

// NewImageFilename - for lazy loading the file
func NewImageFilename(imgFile string) *Image {
	if imgFilenameAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFilenameAbs
	}
	return &Image{FileName: imgFile}
}

// NewImageBytes - for use with "embed", etc.
func NewImageBytes(imgBytes []byte) *Image {
	return &Image{Encoded: imgBytes}
}

// Decode decodes and stores the image in the struct.
func (i *Image) Decode() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.Original != nil {
		return nil
	}
	var rdr io.Reader
	switch {
	case len(i.Encoded) > 0 && len(i.FileName) > 0:
		return errors.New(`image contains 2 sources`)
	case len(i.Encoded) > 0:
		rdr = bytes.NewReader(i.Encoded)
	case len(i.FileName) > 0:
		f, err := os.Open(i.FileName)
		if err != nil {
			return errors.New(err)
		}
		defer f.Close()
		rdr = f
	default:
		return errors.New(consts.ErrNilImage)
	}
	img, format, err := image.Decode(rdr)
	if err != nil {
		if len(i.FileName) > 0 {
			return errors.WrapPrefix(err, `decode `+i.FileName, 0)
		}
		return errors.WrapPrefix(err, `decode`, 0)
	}
	i.Original = img
	i.Format = format
	return nil
}

// Image returns the decoded image.
func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if err := i.Decode(); err != nil {
		return nil, err
	}
	return i.Original, nil
}

// Dimensions returns the width and height of the decoded image.
func (i *Image) Dimensions() (image.Point, error) {
	img, err := i.Image()
	if err != nil {
		return image.Point{}, err
	}
	return img.Bounds().Size(), nil
}

func (i *Image) ColorModel() color.Model {
	if i == nil || i.Decode() != nil {
		return color.NRGBAModel
	}
	return i.Original.ColorModel()
}

func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.Decode() != nil {
		return image.Rectangle{}
	}
	return i.Original.Bounds()
}

func (i *Image) At(x, y int) color.Color {
	if i == nil || i.Decode() != nil {
		return color.NRGBA{}
	}
	return i.Original.At(x, y)
}

// PixelAt returns the straight alpha pixel at column x and row y counted
// from the top left corner of img.
func PixelAt(img image.Image, x, y int) color.NRGBA {
	b := img.Bounds()
	switch m := img.(type) {
	case *image.NRGBA:
		return m.NRGBAAt(b.Min.X+x, b.Min.Y+y)
	case *Image:
		if m.Original != nil {
			return PixelAt(m.Original, x, y)
		}
	}
	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}
