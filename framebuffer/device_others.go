//go:build !linux

// Package framebuffer binds a linux framebuffer device (/dev/fbN) and
// exposes its memory mapped pixels as a Surface.
package framebuffer

import (
	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

type Device struct{}

func Open(path string) (*Device, error) {
	return nil, errors.Op(path, `open`, consts.ErrPlatformNotSupported)
}

func (d *Device) Close() error       { return nil }
func (d *Device) Surface() *Surface  { return nil }
func (d *Device) Geometry() Geometry { return Geometry{} }
func (d *Device) Path() string       { return `` }
func (d *Device) ID() string         { return `` }
