package fbclock_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbclock"
	"github.com/srlehn/fbclock/framebuffer"
	"github.com/srlehn/fbclock/internal/config"
	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

func TestNewMissingDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), `fb0`)
	c, err := fbclock.New(fbclock.SetDevice(path))
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestNewOptionErrors(t *testing.T) {
	_, err := fbclock.New(fbclock.SetInterval(0))
	assert.Error(t, err)
	_, err = fbclock.New(fbclock.SetOpener(nil))
	assert.Error(t, err)
}

func TestNewOpenerError(t *testing.T) {
	var buf bytes.Buffer
	var opened string
	_, err := fbclock.New(
		fbclock.SetSLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), true),
		fbclock.SetDevice(`/dev/fb3`),
		fbclock.SetOpener(func(path string) (*framebuffer.Device, error) {
			opened = path
			return nil, errors.New(`ioctl FBIOGET_VSCREENINFO failed`)
		}),
	)
	require.Error(t, err)
	assert.Equal(t, `/dev/fb3`, opened)
	assert.Contains(t, err.Error(), `FBIOGET_VSCREENINFO`)
	assert.Contains(t, buf.String(), `opened framebuffer`)

	_, err = fbclock.New(fbclock.SetOpener(func(string) (*framebuffer.Device, error) { return nil, nil }))
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Device = `/dev/fb5`
	cfg.Interval = 2 * time.Second
	var opened string
	_, _ = fbclock.New(fbclock.FromConfig(cfg), fbclock.SetOpener(func(path string) (*framebuffer.Device, error) {
		opened = path
		return nil, errors.New(`no device`)
	}))
	assert.Equal(t, `/dev/fb5`, opened)
}

func TestNilClock(t *testing.T) {
	var c *fbclock.Clock
	err := c.Run(context.Background())
	assert.ErrorIs(t, err, consts.ErrNilReceiver)
	assert.Contains(t, err.Error(), `Run()`)
	assert.NoError(t, c.Close())
	assert.Nil(t, c.Logger())
	assert.Nil(t, c.Device())
}
