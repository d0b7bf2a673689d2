//go:build linux

// Package framebuffer binds a linux framebuffer device (/dev/fbN) and
// exposes its memory mapped pixels as a Surface.
package framebuffer

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

// Device is an opened and memory mapped framebuffer.
type Device struct {
	path    string
	fd      int
	finfo   fixedScreenInfo
	vinfo   variableScreenInfo
	mem     []byte
	surface *Surface

	closeOnce sync.Once
	closeErr  error
}

// Open opens the framebuffer device read-write and non-blocking, queries
// its geometry and maps its pixel buffer shared read-write.
// An empty path opens the default device.
func Open(path string) (*Device, error) {
	if len(path) == 0 {
		path = consts.DefaultDevice
	}
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Op(path, `open`, err)
	}
	d := &Device{path: path, fd: fd}
	if err := ioctl(fd, getFixedScreenInfo, unsafe.Pointer(&d.finfo)); err != nil {
		_ = unix.Close(fd)
		return nil, errors.Op(path, `ioctl FBIOGET_FSCREENINFO`, err)
	}
	if err := ioctl(fd, getVariableScreenInfo, unsafe.Pointer(&d.vinfo)); err != nil {
		_ = unix.Close(fd)
		return nil, errors.Op(path, `ioctl FBIOGET_VSCREENINFO`, err)
	}
	geom := geometryOf(&d.finfo, &d.vinfo)
	if err := geom.Validate(); err != nil {
		_ = unix.Close(fd)
		return nil, errors.Op(path, `geometry`, err)
	}
	d.mem, err = unix.Mmap(fd, 0, geom.Size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, errors.Op(path, `mmap`, err)
	}
	d.surface, err = NewSurface(d.mem, geom)
	if err != nil {
		_ = unix.Munmap(d.mem)
		_ = unix.Close(fd)
		return nil, errors.Op(path, `surface`, err)
	}
	return d, nil
}

// Close unmaps the pixel buffer and closes the device.
// Only the first call has an effect, later calls return its result.
func (d *Device) Close() error {
	if d == nil {
		return nil
	}
	d.closeOnce.Do(func() {
		errUnmap := unix.Munmap(d.mem)
		errClose := unix.Close(d.fd)
		d.mem, d.surface = nil, nil
		if err := errors.Join(errUnmap, errClose); err != nil {
			d.closeErr = errors.Op(d.path, `close`, err)
		}
	})
	return d.closeErr
}

// Surface returns the pixel view of the mapping; nil after Close.
func (d *Device) Surface() *Surface {
	if d == nil {
		return nil
	}
	return d.surface
}

func (d *Device) Geometry() Geometry {
	if d == nil {
		return Geometry{}
	}
	return geometryOf(&d.finfo, &d.vinfo)
}

func (d *Device) Path() string {
	if d == nil {
		return ``
	}
	return d.path
}

// ID is the driver identification string, e.g. "EFI VGA".
func (d *Device) ID() string {
	if d == nil {
		return ``
	}
	return d.finfo.id()
}

func ioctl(fd int, req uintptr, data unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(data))
	if errno != 0 {
		return errno
	}
	return nil
}
