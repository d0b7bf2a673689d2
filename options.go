package fbclock

import (
	"log/slog"
	"time"

	"github.com/srlehn/fbclock/framebuffer"
	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/status"
)

type Option interface {
	ApplyOption(s *settings) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*settings) error

func (o OptFunc) ApplyOption(s *settings) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *settings) error {
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return err
		}
	}
	return nil
}

// SetDevice selects the framebuffer device, empty for /dev/fb0.
func SetDevice(path string) Option {
	return OptFunc(func(s *settings) error { s.device = path; return nil })
}

// SetCapacityFile enables the battery suffix read from path.
func SetCapacityFile(path string) Option {
	return OptFunc(func(s *settings) error { s.capacity = path; return nil })
}

// SetLayout sets the time layout, see time.Layout.
func SetLayout(layout string) Option {
	return OptFunc(func(s *settings) error { s.layout = layout; return nil })
}

func SetInterval(d time.Duration) Option {
	return OptFunc(func(s *settings) error {
		if d <= 0 {
			return errors.Errorf(`invalid interval %v`, d)
		}
		s.interval = d
		return nil
	})
}

// SetTimeSource replaces the local wall clock.
func SetTimeSource(clk status.Clock) Option {
	return OptFunc(func(s *settings) error { s.timeSrc = clk; return nil })
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(s *settings) error {
		if enable {
			if h == nil {
				s.logger = slog.Default()
			} else {
				s.logger = slog.New(h)
			}
		} else {
			s.logger = nil
		}
		return nil
	})
}

func SetLogger(l *slog.Logger) Option {
	return OptFunc(func(s *settings) error { s.logger = l; return nil })
}

// SetOpener replaces framebuffer.Open.
func SetOpener(open func(path string) (*framebuffer.Device, error)) Option {
	return OptFunc(func(s *settings) error {
		if open == nil {
			return errors.New(consts.ErrNilParam)
		}
		s.openFunc = open
		return nil
	})
}
