package consts

import (
	"errors"
)

var (
	ErrNilReceiver    = errors.New(`nil receiver`)
	ErrNilImage       = errors.New(`nil image`)
	ErrImageTooLarge  = errors.New(`image too large`)
	ErrNoTerminal     = errors.New(`output is not a terminal`)
	ErrUnknownResizer = errors.New(`unknown resizer`)
	ErrIncomplete     = errors.New(`incomplete render buffer`)
	ErrOutputClosed   = errors.New(`output stream closed`)
)

const (
	// FallbackCols and FallbackRows are used when the terminal size can't be determined.
	FallbackCols = 50
	FallbackRows = 50

	DefaultScale   = 100
	DefaultResizer = `imaging`
)
