// Package rall registers all resizers.
//
//	import _ "github.com/srlehn/termascii/resize/rall"
package rall

import (
	_ "github.com/srlehn/termascii/resize/bild"
	_ "github.com/srlehn/termascii/resize/gift"
	_ "github.com/srlehn/termascii/resize/imaging"
	_ "github.com/srlehn/termascii/resize/xdraw"
)
