// Package termsize reports the size of the terminal an output file is connected to.
package termsize

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
)

// Sizer queries the size of a terminal in character cells.
type Sizer struct {
	f *os.File
}

// New returns a Sizer for f. A nil f means standard output.
func New(f *os.File) *Sizer {
	if f == nil {
		f = os.Stdout
	}
	return &Sizer{f: f}
}

// SizeInCells returns the number of columns and rows.
// consts.ErrNoTerminal is returned when the file isn't a terminal,
// e.g. when the output is piped into another program.
func (s *Sizer) SizeInCells() (cols, rows uint, err error) {
	if s == nil || s.f == nil {
		return 0, 0, errors.New(consts.ErrNilReceiver)
	}
	fd := s.f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, 0, errors.New(consts.ErrNoTerminal)
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil {
		return 0, 0, errors.WrapPrefix(err, `terminal size`, 0)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf(`%w: reported size %dx%d`, consts.ErrNoTerminal, w, h)
	}
	return uint(w), uint(h), nil
}

// Fixed is a Sizer with a constant size.
type Fixed struct {
	Cols, Rows uint
}

func (f Fixed) SizeInCells() (cols, rows uint, err error) { return f.Cols, f.Rows, nil }
