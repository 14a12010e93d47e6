package termascii

import (
	"context"
	"image"
	"os"
	"sync"

	"github.com/srlehn/termascii/art"
	"github.com/srlehn/termascii/resize/rdefault"
	"github.com/srlehn/termascii/source"
	"github.com/srlehn/termascii/termsize"
)

var (
	// chosen defaults
	resizer source.Resizer = &rdefault.Resizer{}
	sizer                  = termsize.New(os.Stdout)
)

var (
	DefaultConfig = art.Options{
		art.SetScale(0),
		art.SetResizer(resizer),
		art.SetSizer(sizer),
	}
)

var (
	convActive  *art.Converter
	convErr     error
	convInitMtx sync.Mutex
)

// Converter returns the converter used by the functions of this package.
// It is created from DefaultConfig on first use.
func Converter() (*art.Converter, error) {
	convInitMtx.Lock()
	defer convInitMtx.Unlock()
	if convActive == nil && convErr == nil {
		convActive, convErr = art.New(DefaultConfig)
	}
	return convActive, convErr
}

// Print writes img to standard output, fitted into the terminal.
func Print(img image.Image) error {
	c, err := Converter()
	if err != nil {
		return err
	}
	return c.Render(context.Background(), img, os.Stdout)
}

// PrintFile ...
func PrintFile(imgFile string) error { return Print(NewImageFileName(imgFile)) }

// PrintBytes - for use with "embed", etc.
func PrintBytes(imgBytes []byte) error { return Print(NewImageBytes(imgBytes)) }

// String returns img as character art without color.
func String(img image.Image) (string, error) {
	c, err := Converter()
	if err != nil {
		return ``, err
	}
	return c.String(context.Background(), img)
}

// NewImage ...
func NewImage(img image.Image) *source.Image { return source.NewImage(img) }

// NewImageFileName ...
func NewImageFileName(imgFile string) *source.Image { return source.NewImageFilename(imgFile) }

// NewImageBytes - for use with "embed", etc.
// png, jpeg, gif, bmp, tiff and webp decoders are registered.
func NewImageBytes(imgBytes []byte) *source.Image { return source.NewImageBytes(imgBytes) }
