package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbclock/internal/daemon"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/logx"
)

func init() { rootCmd.AddCommand(stopCmd) }

var stopCmd = &cobra.Command{
	Use:   stopCmdStr,
	Short: `stop running clocks`,
	Long:  `send SIGINT to the running clocks, they stop on their next tick`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(stopFunc(cmd))
	},
}

var stopCmdStr = "stop"

func stopFunc(cmd *cobra.Command) func() error {
	return func() error {
		exe, err := os.Executable()
		if err != nil {
			return errors.New(err)
		}
		pids, err := daemon.Stop(filepath.Base(exe), logx.Prov(nil))
		for _, pid := range pids {
			fmt.Fprintf(cmd.OutOrStdout(), "stopped %d\n", pid)
		}
		if err != nil {
			return err
		}
		if len(pids) == 0 {
			return errors.New(`no running clock found`)
		}
		return nil
	}
}
