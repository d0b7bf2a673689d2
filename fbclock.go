// Package fbclock draws a clock, optionally with the battery charge, at
// the bottom of a linux framebuffer console.
package fbclock

import (
	"context"
	"log/slog"
	"time"

	"github.com/srlehn/fbclock/framebuffer"
	"github.com/srlehn/fbclock/internal/config"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
	"github.com/srlehn/fbclock/render"
	"github.com/srlehn/fbclock/status"
)

// Clock is a framebuffer device bound to a render loop.
type Clock struct {
	device *framebuffer.Device
	loop   *render.Loop
	logger *slog.Logger
}

var _ logx.LoggerProvider = (*Clock)(nil)

type settings struct {
	device   string
	capacity string
	layout   string
	interval time.Duration
	timeSrc  status.Clock
	logger   *slog.Logger
	openFunc func(path string) (*framebuffer.Device, error)
}

// New opens the framebuffer device and prepares the render loop.
// Errors are fatal for the clock and are not retried.
func New(opts ...Option) (*Clock, error) {
	s := &settings{
		interval: render.DefaultInterval,
		openFunc: framebuffer.Open,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return nil, errors.New(err)
		}
	}
	c := &Clock{logger: s.logger}
	err := logx.TimeIt(func() error {
		dev, errOpen := s.openFunc(s.device)
		c.device = dev
		return errOpen
	}, `opened framebuffer`, c, `device`, s.device)
	if err != nil {
		return nil, err
	}
	if c.device == nil {
		return nil, errors.New(`no framebuffer device`)
	}
	logx.Info(`framebuffer geometry`, c, `id`, c.device.ID(), `geometry`, c.device.Geometry().String())

	composer := &status.Composer{
		Clock:  s.timeSrc,
		Layout: s.layout,
		Logger: c,
	}
	if len(s.capacity) > 0 {
		composer.Capacity = status.CapacityFile(s.capacity)
	}
	c.loop, err = render.NewLoop(
		c.device.Surface(), composer, c.device,
		render.WithInterval(s.interval),
		render.WithLogger(c),
	)
	if err != nil {
		_ = c.device.Close()
		return nil, err
	}
	return c, nil
}

// Run repaints the clock until ctx is done, then unmaps and closes the
// device. A cancelled context is a regular shutdown.
func (c *Clock) Run(ctx context.Context) error {
	if c == nil || c.loop == nil {
		return errors.NilReceiver()
	}
	return c.loop.Run(ctx)
}

// Close releases the device of a clock that never ran.
func (c *Clock) Close() error {
	if c == nil {
		return nil
	}
	return c.device.Close()
}

func (c *Clock) Device() *framebuffer.Device {
	if c == nil {
		return nil
	}
	return c.device
}

func (c *Clock) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

// Run opens the device, runs the clock until ctx is done and releases the device.
func Run(ctx context.Context, opts ...Option) error {
	c, err := New(opts...)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}

// FromConfig translates a resolved configuration into options.
func FromConfig(cfg config.Config) Options {
	return Options{
		SetDevice(cfg.Device),
		SetCapacityFile(cfg.Capacity),
		SetLayout(cfg.Layout),
		SetInterval(cfg.Interval),
	}
}
