package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbclock/framebuffer"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/internal/linux"
	"github.com/srlehn/fbclock/render"
)

func init() { rootCmd.AddCommand(infoCmd) }

var infoCmd = &cobra.Command{
	Use:   infoCmdStr,
	Short: `print framebuffer geometry`,
	Long:  `print the geometry of the framebuffer device and the mode of the current console`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(infoFunc(cmd))
	},
}

var infoCmdStr = "info"

func infoFunc(cmd *cobra.Command) func() error {
	return func() error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		dev, err := framebuffer.Open(cfg.Device)
		if err != nil {
			return err
		}
		geom := dev.Geometry()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "device\t%s\n", dev.Path())
		fmt.Fprintf(tw, "id\t%s\n", dev.ID())
		fmt.Fprintf(tw, "resolution\t%dx%d\n", geom.Width, geom.Height)
		fmt.Fprintf(tw, "bits per pixel\t%d (%d bytes)\n", geom.BitsPerPixel, geom.BytesPerPixel())
		fmt.Fprintf(tw, "line length\t%d\n", geom.Stride)
		fmt.Fprintf(tw, "buffer length\t%d\n", geom.Size)
		fmt.Fprintf(tw, "clock row\t%d\n", render.NewDisplayState(geom.Height).Y)
		if mode, isConsole, err := linux.KDGetMode(os.Stdin.Fd()); err == nil && isConsole {
			fmt.Fprintf(tw, "console mode\t%s\n", mode)
		}
		return errors.Join(tw.Flush(), dev.Close())
	}
}
