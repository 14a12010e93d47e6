package art

import (
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/srlehn/termascii/geometry"
	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
	"github.com/srlehn/termascii/resize/rdefault"
	"github.com/srlehn/termascii/source"
	"github.com/srlehn/termascii/termsize"
)

type Option interface {
	ApplyOption(c *Converter) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Converter) error

func (o OptFunc) ApplyOption(c *Converter) error { return o(c) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(c *Converter) error { return c.SetOptions([]Option(o)...) }

// DefaultOptions are applied by New before the caller's options.
var DefaultOptions = Options{
	SetScale(consts.DefaultScale),
	SetThreads(1),
	SetResizer(&rdefault.Resizer{}),
	SetSizer(termsize.New(nil)),
}

func (c *Converter) SetOptions(opts ...Option) error {
	if c == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetScale sets the size of the output in percent of the image size.
// 0 fits the image into the terminal.
func SetScale(scale uint8) Option {
	return OptFunc(func(c *Converter) error { c.scale = scale; return nil })
}

// SetContrast sets the contrast change (-128..127), 0 keeps the image as is.
func SetContrast(contrast int8) Option {
	return OptFunc(func(c *Converter) error { c.contrast = contrast; return nil })
}

func SetColor(enable bool) Option {
	return OptFunc(func(c *Converter) error { c.policy.Color = enable; return nil })
}

// SetNoBackground draws fully transparent pixels as blank space.
func SetNoBackground(enable bool) Option {
	return OptFunc(func(c *Converter) error { c.policy.NoBackground = enable; return nil })
}

// SetThreads sets the number of render workers.
// 1 streams the output while it is computed, 0 uses one worker per CPU.
func SetThreads(threads int) Option {
	return OptFunc(func(c *Converter) error {
		if threads < 0 {
			return errors.Errorf(`invalid number of threads: %d`, threads)
		}
		c.threads = threads
		return nil
	})
}

func SetResizer(rsz source.Resizer) Option {
	return OptFunc(func(c *Converter) error {
		if rsz == nil {
			return errors.NilParam(rsz)
		}
		c.resizer = rsz
		return nil
	})
}

// SetResizerName selects a resizer from the registry.
// The resizer packages have to be imported for registration, see resize/rall.
func SetResizerName(name string) Option {
	return OptFunc(func(c *Converter) error {
		rsz, err := source.GetRegResizerByName(name)
		if err != nil {
			return err
		}
		c.resizer = rsz
		return nil
	})
}

// SetSizer sets the provider of the terminal size used with scale 0.
func SetSizer(sizer geometry.Sizer) Option {
	return OptFunc(func(c *Converter) error { c.sizer = sizer; return nil })
}

// SetProfile fixes the color profile of the output.
// Without it the profile is detected when the output is a file.
func SetProfile(profile termenv.Profile) Option {
	return OptFunc(func(c *Converter) error {
		c.profile = profile
		c.profileSet = true
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(c *Converter) error { c.logger = logger; return nil })
}
