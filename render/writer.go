package render

import (
	"bufio"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/srlehn/termascii/cell"
	"github.com/srlehn/termascii/internal/consts"
	"github.com/srlehn/termascii/internal/errors"
)

// DetectProfile returns the color capability of f.
// Files that aren't terminals get termenv.Ascii, NO_COLOR and CLICOLOR_FORCE are honored.
func DetectProfile(f *os.File) termenv.Profile {
	if f == nil {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// Writer writes cells to an output stream.
// Color escapes are only written when color is enabled and the profile supports color.
type Writer struct {
	w       *bufio.Writer
	profile termenv.Profile
	color   bool
	err     error
	written int64
}

// NewWriter ...
func NewWriter(w io.Writer, profile termenv.Profile, color bool) *Writer {
	if w == nil {
		w = io.Discard
	}
	return &Writer{
		w:       bufio.NewWriter(w),
		profile: profile,
		color:   color && profile != termenv.Ascii,
	}
}

// Colored reports whether escape sequences are written.
func (w *Writer) Colored() bool { return w != nil && w.color }

// Written returns the number of bytes handed to the underlying stream so far.
func (w *Writer) Written() int64 {
	if w == nil {
		return 0
	}
	return w.written
}

// Err returns the first write error.
func (w *Writer) Err() error {
	if w == nil {
		return nil
	}
	return w.err
}

// WriteCell writes a glyph with its trailing space, or two spaces for blank cells.
func (w *Writer) WriteCell(c cell.Cell) error {
	switch {
	case c.EOL:
		return w.EndLine()
	case c.Blank:
		return w.writeString(`  `)
	case w.color:
		s := w.profile.String(string(c.Glyph)).Foreground(w.profile.FromColor(c.Color)).String()
		if err := w.writeString(s); err != nil {
			return err
		}
		return w.writeByte(' ')
	default:
		if err := w.writeString(string(c.Glyph)); err != nil {
			return err
		}
		return w.writeByte(' ')
	}
}

// EndLine terminates the current row.
func (w *Writer) EndLine() error { return w.writeByte('\n') }

// Flush writes buffered data to the underlying stream.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) writeString(s string) error {
	if w.err != nil {
		return w.err
	}
	n, err := w.w.WriteString(s)
	w.written += int64(n)
	if err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) writeByte(b byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.WriteByte(b); err != nil {
		return w.fail(err)
	}
	w.written++
	return nil
}

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = errors.Errorf(`%w: %w`, consts.ErrOutputClosed, err)
	}
	return w.err
}
