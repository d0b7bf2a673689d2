// Package status composes the text shown by the clock.
package status

import (
	"strconv"
	"strings"
	"time"

	"github.com/srlehn/fbclock/glyph"
	"github.com/srlehn/fbclock/internal/logx"
)

const (
	// MaxLen is the maximum length of a composed text in bytes.
	MaxLen = 127

	// TimeErrorText replaces the timestamp when the time can't be resolved.
	TimeErrorText = `Error getting time!`

	// DefaultLayout is the asctime layout, e.g. "Wed Jan  1 00:00:00 2020".
	DefaultLayout = time.ANSIC
)

type Clock interface {
	Now() (time.Time, error)
}

// CapacitySource reports a battery charge in percent.
type CapacitySource interface {
	Capacity() (int, error)
}

// Composer builds the text for the current tick.
type Composer struct {
	Clock    Clock          // defaults to LocalClock
	Capacity CapacitySource // optional
	Layout   string         // time layout, defaults to DefaultLayout
	Logger   logx.LoggerProvider
}

// Compose returns the timestamp followed by " - N%" if a capacity source
// is set and readable. The result is printable ASCII of at most MaxLen bytes.
func (c *Composer) Compose() string {
	if c == nil {
		return TimeErrorText
	}
	var b strings.Builder
	b.WriteString(c.timestamp())
	if c.Capacity != nil {
		pct, err := c.Capacity.Capacity()
		if err != nil {
			logx.Debug(`capacity unavailable`, c.Logger, `err`, err)
		} else {
			b.WriteString(` - `)
			b.WriteString(strconv.Itoa(pct))
			b.WriteString(`%`)
		}
	}
	return Sanitize(b.String())
}

func (c *Composer) timestamp() string {
	clk := c.Clock
	if clk == nil {
		clk = LocalClock{}
	}
	now, err := clk.Now()
	if err != nil || now.IsZero() {
		logx.Debug(`time unavailable`, c.Logger, `err`, err)
		return TimeErrorText
	}
	layout := c.Layout
	if len(layout) == 0 {
		layout = DefaultLayout
	}
	return now.Format(layout)
}

// Sanitize replaces bytes without a displayable glyph by '?' and
// truncates to MaxLen.
func Sanitize(s string) string {
	if len(s) > MaxLen {
		s = s[:MaxLen]
	}
	clean := true
	for i := 0; i < len(s); i++ {
		if !glyph.Printable(s[i]) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if !glyph.Printable(c) {
			b[i] = '?'
		}
	}
	return string(b)
}

// LocalClock reports the wall clock in the local time zone.
type LocalClock struct{}

func (LocalClock) Now() (time.Time, error) { return time.Now().Local(), nil }

// ClockFunc adapts a function to Clock.
type ClockFunc func() (time.Time, error)

func (f ClockFunc) Now() (time.Time, error) { return f() }
