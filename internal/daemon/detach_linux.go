package daemon

import (
	"os"

	godaemon "github.com/sevlyar/go-daemon"

	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
)

func newContext(args []string) *godaemon.Context {
	return &godaemon.Context{
		Args:    append([]string{os.Args[0]}, args...),
		WorkDir: `/`,
	}
}

// Detach starts a copy of the running executable with args in a new
// session, working directory "/" and standard streams on /dev/null.
// It returns the child's pid; the caller is expected to exit.
func Detach(args []string, loggerProv logx.LoggerProvider) (int, error) {
	if IsDetached() {
		return 0, errors.New(`already detached`)
	}
	child, err := newContext(args).Reborn()
	if err != nil {
		return 0, errors.Op(os.Args[0], `start detached`, err)
	}
	if child == nil {
		return 0, errors.New(`no detached process`)
	}
	pid := child.Pid
	logx.Info(`detached`, loggerProv, `pid`, pid)
	if err := child.Release(); err != nil {
		return pid, errors.New(err)
	}
	return pid, nil
}

// Settle completes the detach in the child: it receives the parent's
// context and moves stdin to /dev/null. It must be called once, early.
func Settle() error {
	if !IsDetached() {
		return nil
	}
	if _, err := newContext(nil).Reborn(); err != nil {
		return errors.Op(os.Args[0], `settle detached`, err)
	}
	return nil
}
