//go:build linux

package framebuffer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbclock/framebuffer"
)

func TestOpenMissingDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), `fb9`)
	d, err := framebuffer.Open(path)
	assert.Nil(t, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), `open`)
}

func TestOpenNotAFramebuffer(t *testing.T) {
	// a regular file can be opened but not queried
	path := filepath.Join(t.TempDir(), `fb0`)
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o600))
	d, err := framebuffer.Open(path)
	assert.Nil(t, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `FBIOGET_FSCREENINFO`)
}

func TestNilDevice(t *testing.T) {
	var d *framebuffer.Device
	assert.NoError(t, d.Close())
	assert.Nil(t, d.Surface())
	assert.Equal(t, framebuffer.Geometry{}, d.Geometry())
}
