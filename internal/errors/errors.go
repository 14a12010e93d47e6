package errors

import (
	"fmt"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

func Is(err, target error) bool { return errorsGo.Is(err, target) }

// New wraps obj with the stack of the caller.
// Unlike github.com/go-errors/errors.New() nil is returned as an untyped nil error.
func New(obj any) error {
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...any) error { return errorsGo.Wrap(fmt.Errorf(format, a...), 1) }

func WrapPrefix(e any, prefix string, skip int) error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// Recovered converts a value returned by recover() into an error that keeps
// the stack of the panicking goroutine. prefix names the failed unit of work.
func Recovered(r any, prefix string) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return errorsGo.WrapPrefix(err, prefix, 2)
	}
	return errorsGo.WrapPrefix(fmt.Sprint(r), prefix, 2)
}

// Stack returns the stack trace of err if it was created by this package.
func Stack(err error) string {
	var errGo *errorsGo.Error
	if errorsGo.As(err, &errGo) {
		return errGo.ErrorStack()
	}
	if err == nil {
		return ``
	}
	return err.Error()
}

// NilParam returns an error with the function name if any of the arguments are nil,
// or unconditionally when called without arguments.
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(msg, skip)
	}
	for i := range args {
		if args[i] == nil {
			return errMsg(msg, skip)
		}
	}
	return nil
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return errorsGo.Wrap(msg, skip)
	}
	return errorsGo.Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
