package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbclock/internal/config"
	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "digital clock at the bottom of the framebuffer console",
	Long:             "fbclock draws the time, and optionally the battery charge, at the bottom of a linux framebuffer console. It detaches from the terminal unless --foreground is given and stops on SIGINT or SIGTERM.",
	Example:          "  fbclock -b /sys/class/power_supply/BAT0/capacity\n  fbclock -f /dev/fb1 --foreground",
	Args:             cobra.NoArgs,
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(clockFunc(cmd))
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	// persistent flags
	rootCmd.PersistentFlags().StringVarP(&deviceFlag, `framebuffer`, `f`, ``, `framebuffer device (default /dev/fb0)`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, ``, `config file (default $XDG_CONFIG_HOME/fbclock/fbclock.conf)`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors and log level`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	// local flags
	rootCmd.Flags().StringVarP(&batteryFlag, `battery`, `b`, ``, `battery capacity file, e.g. /sys/class/power_supply/BAT0/capacity`)
	rootCmd.Flags().BoolVar(&foregroundFlag, `foreground`, false, `don't detach from the terminal`)
	rootCmd.Flags().StringVar(&layoutFlag, `layout`, ``, `Go time layout (default "`+`Mon Jan _2 15:04:05 2006`+`")`)
	rootCmd.Flags().DurationVar(&intervalFlag, `interval`, 0, `repaint interval (default 1s)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	deviceFlag     string
	configFlag     string
	logFileFlag    string
	debugFlag      bool
	silentFlag     bool
	batteryFlag    string
	foregroundFlag bool
	layoutFlag     string
	intervalFlag   time.Duration
)

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.New(consts.ErrNilParam)
	} else {
		err = fn()
	}
	if err != nil {
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, filepath.Base(os.Args[0])+`: `+err.Error())
			}
		}
		os.Exit(1)
	}
}

// resolveConfig applies the changed flags over the config file.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed(`framebuffer`) {
		cfg.Device = deviceFlag
	}
	if flags.Changed(`log-file`) {
		cfg.LogFile = logFileFlag
	}
	if flags.Lookup(`battery`) != nil && flags.Changed(`battery`) {
		cfg.Capacity = batteryFlag
	}
	if flags.Lookup(`foreground`) != nil && flags.Changed(`foreground`) {
		cfg.Foreground = foregroundFlag
	}
	if flags.Lookup(`layout`) != nil && flags.Changed(`layout`) {
		cfg.Layout = layoutFlag
	}
	if flags.Lookup(`interval`) != nil && flags.Changed(`interval`) {
		cfg.Interval = intervalFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Abs(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger logs to the log file if one is configured, to stderr when
// attached to a terminal, and nowhere otherwise.
func newLogger(cfg config.Config, attached bool) (*slog.Logger, io.Closer, error) {
	if len(cfg.LogFile) > 0 {
		return logx.OpenFile(cfg.LogFile, debugFlag)
	}
	if attached && debugFlag {
		return logx.New(os.Stderr, true), closerFunc(nil), nil
	}
	return logx.New(nil, false), closerFunc(nil), nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	if f == nil {
		return nil
	}
	return f()
}
