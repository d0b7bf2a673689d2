package main

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/fbclock/framebuffer"
	"github.com/srlehn/fbclock/internal/errors"
	"github.com/srlehn/fbclock/render"
)

func init() {
	rootCmd.AddCommand(grabCmd)
	grabCmd.Flags().BoolVar(&stripFlag, `strip`, false, `only grab the clock strip`)
}

var grabCmd = &cobra.Command{
	Use:   grabCmdStr + ` /path/to/out.{png,bmp,tif}`,
	Short: `save the framebuffer contents as image`,
	Long:  `save the framebuffer contents, or only the strip the clock is drawn on, as png, bmp or tiff image`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(grabFunc(cmd, args[0]))
	},
}

var (
	grabCmdStr = "grab"
	stripFlag  bool
)

type encodeFunc func(w io.Writer, img image.Image) error

func encoderFor(fileName string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case `.png`:
		return png.Encode, nil
	case `.bmp`:
		return bmp.Encode, nil
	case `.tif`, `.tiff`:
		return func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }, nil
	}
	return nil, errors.Errorf(`unsupported image format %q`, filepath.Ext(fileName))
}

func grabFunc(cmd *cobra.Command, outFile string) func() error {
	return func() error {
		encode, err := encoderFor(outFile)
		if err != nil {
			return err
		}
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		dev, err := framebuffer.Open(cfg.Device)
		if err != nil {
			return err
		}
		defer dev.Close()
		s := dev.Surface()
		var img image.Image = s
		if stripFlag {
			img = s.SubImage(s.StripBounds(render.NewDisplayState(s.Bounds().Dy()).Y))
		}
		return writeImage(outFile, img, encode)
	}
}

func writeImage(fileName string, img image.Image, encode encodeFunc) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.New(err)
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return errors.Op(fileName, `encode`, err)
	}
	if err := f.Close(); err != nil {
		return errors.New(err)
	}
	return nil
}
