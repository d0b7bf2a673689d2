//go:build !linux

package daemon

import (
	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
)

func Detach(args []string, loggerProv logx.LoggerProvider) (int, error) {
	return 0, errors.New(consts.ErrPlatformNotSupported)
}

func Settle() error { return nil }
