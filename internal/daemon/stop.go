package daemon

import (
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
)

// commands that run next to a clock and must not be stopped
var toolCommands = []string{`stop`, `info`, `grab`, `help`, `completion`}

// FindRunning returns the other processes running the executable name
// as a clock.
func FindRunning(name string) ([]*process.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.New(err)
	}
	self := int32(os.Getpid())
	var ret []*process.Process
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		// the process name is cut to 15 bytes by the kernel, argv[0] is not
		args, err := p.CmdlineSlice()
		if err != nil || len(args) == 0 || filepath.Base(args[0]) != name {
			continue
		}
		if slices.ContainsFunc(args[1:], func(a string) bool { return slices.Contains(toolCommands, a) }) {
			continue
		}
		ret = append(ret, p)
	}
	return ret, nil
}

// Stop sends SIGINT to all clocks found by FindRunning and returns their pids.
func Stop(name string, loggerProv logx.LoggerProvider) ([]int32, error) {
	procs, err := FindRunning(name)
	if err != nil {
		return nil, err
	}
	var (
		pids []int32
		errs []error
	)
	for _, p := range procs {
		if err := p.SendSignal(syscall.SIGINT); err != nil {
			errs = append(errs, errors.Errorf(`pid %d: %w`, p.Pid, err))
			continue
		}
		logx.Info(`sent interrupt`, loggerProv, `pid`, p.Pid)
		pids = append(pids, p.Pid)
	}
	if len(errs) > 0 {
		return pids, errors.Join(errs...)
	}
	return pids, nil
}
