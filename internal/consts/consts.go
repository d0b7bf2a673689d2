package consts

import (
	"errors"
)

var (
	ErrNilReceiver          = errors.New(`nil receiver`)
	ErrNilParam             = errors.New(`nil parameter`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
	ErrUnsupportedDepth     = errors.New(`unsupported bits per pixel`)
	ErrNoCapacity           = errors.New(`no capacity value`)
	ErrTimeUnavailable      = errors.New(`time unavailable`)
)

const (
	ProgramName = `fbclock`

	DefaultDevice = `/dev/fb0`
)
