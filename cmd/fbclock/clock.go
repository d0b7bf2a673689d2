package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbclock"
	"github.com/srlehn/fbclock/internal/daemon"
	"github.com/srlehn/fbclock/internal/linux"
	"github.com/srlehn/fbclock/internal/logx"
)

func clockFunc(cmd *cobra.Command) func() error {
	return func() error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		detached := daemon.IsDetached()
		if err := daemon.Settle(); err != nil {
			return err
		}
		logger, logCloser, err := newLogger(cfg, !detached)
		if err != nil {
			return err
		}
		defer logCloser.Close()
		prov := logx.Prov(logger)
		opts := fbclock.Options{
			fbclock.FromConfig(cfg),
			fbclock.SetLogger(logger),
		}

		if !cfg.Foreground && !detached {
			// startup failures are reported on the terminal, so the
			// device is checked before detaching
			clk, err := fbclock.New(opts...)
			if err != nil {
				return err
			}
			warnHiddenConsole(prov)
			if err := clk.Close(); err != nil {
				return err
			}
			_, err = daemon.Detach(os.Args[1:], prov)
			return err
		}

		ctx, stop := daemon.NotifyContext(context.Background())
		defer stop()
		clk, err := fbclock.New(opts...)
		if err != nil {
			return err
		}
		if cfg.Foreground {
			warnHiddenConsole(prov)
		}
		return clk.Run(ctx)
	}
}

func warnHiddenConsole(prov logx.LoggerProvider) {
	mode, isConsole, err := linux.KDGetMode(os.Stdin.Fd())
	if logx.IsErr(err, prov, slog.LevelDebug) || !isConsole {
		return
	}
	if !mode.Visible() {
		logx.Warn(`console is in graphics mode, the clock is likely hidden`, prov, `mode`, mode.String())
	}
}
