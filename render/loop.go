// Package render drives the once per second repaint of the clock strip.
package render

import (
	"context"
	"image"
	"io"
	"sync"
	"time"

	"github.com/srlehn/fbclock/glyph"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
)

// Canvas is the surface the loop paints on, see framebuffer.Surface.
type Canvas interface {
	Bounds() image.Rectangle
	ClearStrip(y int)
	DrawChar(x, y int, code byte)
}

// Composer supplies the text of a tick, see status.Composer.
type Composer interface {
	Compose() string
}

const DefaultInterval = time.Second

// Loop repaints the strip each tick until its context is done.
type Loop struct {
	canvas   Canvas
	composer Composer
	release  io.Closer
	interval time.Duration
	logger   logx.LoggerProvider

	state DisplayState
	ticks uint64

	runOnce sync.Once
}

// NewLoop creates a loop painting the text of composer onto canvas.
// release (usually the framebuffer device) is closed when Run returns.
func NewLoop(canvas Canvas, composer Composer, release io.Closer, opts ...Option) (*Loop, error) {
	if err := errors.NilParam(canvas, composer); err != nil {
		return nil, err
	}
	l := &Loop{
		canvas:   canvas,
		composer: composer,
		release:  release,
		interval: DefaultInterval,
		state:    NewDisplayState(canvas.Bounds().Dy()),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.interval <= 0 {
		return nil, errors.Errorf(`invalid tick interval %v`, l.interval)
	}
	return l, nil
}

type Option func(*Loop)

func WithInterval(d time.Duration) Option { return func(l *Loop) { l.interval = d } }

func WithLogger(p logx.LoggerProvider) Option { return func(l *Loop) { l.logger = p } }

func WithState(s DisplayState) Option { return func(l *Loop) { l.state = s } }

// State returns a copy of the current position.
func (l *Loop) State() DisplayState { return l.state }

// Ticks is the number of completed ticks.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Tick composes the text, clears the strip and draws the text at the
// current position, then advances the position.
func (l *Loop) Tick() {
	text := l.composer.Compose()
	y := l.state.Y
	l.canvas.ClearStrip(y)
	for i := len(text) - 1; i >= 0; i-- {
		l.canvas.DrawChar(l.state.X+i*glyph.Width, y, text[i])
	}
	l.state.Advance()
	l.ticks++
}

// Run ticks until ctx is done. Cancellation is observed between ticks,
// never in the middle of one. On return the release handle is closed,
// its error is returned. Run may only be called once.
func (l *Loop) Run(ctx context.Context) error {
	if l == nil {
		return errors.NilReceiver()
	}
	var err error = errors.New(`render loop already ran`)
	l.runOnce.Do(func() { err = l.run(ctx) })
	return err
}

func (l *Loop) run(ctx context.Context) (err error) {
	defer func() {
		if l.release == nil {
			return
		}
		if errClose := l.release.Close(); errClose != nil {
			err = errors.Join(err, errClose)
		}
		logx.Info(`released framebuffer`, l.logger, `ticks`, l.ticks)
	}()
	logx.Info(`render loop started`, l.logger, `x`, l.state.X, `y`, l.state.Y, `interval`, l.interval)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		if ctx.Err() != nil {
			logx.Info(`stopping render loop`, l.logger, `cause`, context.Cause(ctx))
			return nil
		}
		l.Tick()
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}
