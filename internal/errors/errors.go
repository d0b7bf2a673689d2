package errors

import (
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/fbclock/internal/consts"
)

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	} else {
		return nil
	}
}

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

// remaining "github.com/go-errors/errors" symbols

type Error = errorsGo.Error

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// Op wraps err with the target (device path, file name) and the failed
// operation, e.g. "/dev/fb0: ioctl FBIOGET_FSCREENINFO: inappropriate ioctl for device".
// The stack points at the caller.
func Op(target, op string, err error) error {
	if err == nil {
		return nil
	}
	prefix := op
	if len(target) > 0 {
		prefix = target + `: ` + op
	}
	return errorsGo.WrapPrefix(err, prefix, 1)
}

// NilReceiver returns an error wrapping consts.ErrNilReceiver with the
// name of the calling method.
func NilReceiver() error {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return errorsGo.Wrap(consts.ErrNilReceiver, 1)
	}
	return errorsGo.WrapPrefix(consts.ErrNilReceiver, runtime.FuncForPC(pc).Name()+`()`, 1)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	for i := range args {
		if args[i] == nil {
			goto anyNil
		}
	}
	return nil
anyNil:
	return errMsg(msg, skip)
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(msg, skip)
	}
	return Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
