package daemon_test

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	godaemon "github.com/sevlyar/go-daemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/srlehn/fbclock/internal/daemon"
)

// the detached test binary reports to this file
const detachReportEnv = `FBCLOCK_TEST_DETACH_REPORT`

func TestDetach(t *testing.T) {
	if daemon.IsDetached() {
		t.Skip(`already detached`)
	}
	report := t.TempDir() + `/report`
	t.Setenv(detachReportEnv, report)

	pid, err := daemon.Detach([]string{`-test.run=^TestDetachedProcess$`}, nil)
	require.NoError(t, err)
	require.Positive(t, pid)

	var b []byte
	require.Eventually(t, func() bool {
		b, err = os.ReadFile(report)
		return err == nil
	}, 10*time.Second, 20*time.Millisecond)

	// pid, session id, working directory
	fields := strings.Fields(string(b))
	require.Len(t, fields, 3)
	assert.Equal(t, strconv.Itoa(pid), fields[0])
	assert.Equal(t, fields[0], fields[1], `detached process leads its session`)
	assert.Equal(t, `/`, fields[2])
}

// TestDetachedProcess runs inside the process started by TestDetach.
func TestDetachedProcess(t *testing.T) {
	report := os.Getenv(detachReportEnv)
	if !daemon.IsDetached() || len(report) == 0 {
		t.Skip(`only runs detached`)
	}
	require.NoError(t, daemon.Settle())
	sid, err := unix.Getsid(0)
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	tmp := report + `.tmp`
	require.NoError(t, os.WriteFile(tmp, []byte(fmt.Sprintf("%d %d %s\n", os.Getpid(), sid, wd)), 0o600))
	require.NoError(t, os.Rename(tmp, report))
}

func TestDetachInDetachedProcess(t *testing.T) {
	t.Setenv(detachReportEnv, ``)
	t.Setenv(godaemon.MARK_NAME, godaemon.MARK_VALUE)
	_, err := daemon.Detach(nil, nil)
	assert.Error(t, err)
}
