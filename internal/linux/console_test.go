//go:build linux

package linux_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbclock/internal/linux"
)

func TestKDGetModeNotAConsole(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), `tty`))
	require.NoError(t, err)
	defer f.Close()
	mode, isConsole, err := linux.KDGetMode(f.Fd())
	assert.NoError(t, err)
	assert.False(t, isConsole)
	assert.Equal(t, linux.KDMode(-1), mode)
}
