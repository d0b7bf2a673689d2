package framebuffer

import (
	"fmt"

	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

// Geometry is the screen layout queried from the device.
type Geometry struct {
	Width, Height int // visible resolution in pixels
	BitsPerPixel  int
	Stride        int // bytes from one row start to the next (line_length)
	Size          int // length of the pixel buffer in bytes (smem_len)
}

func (g Geometry) BytesPerPixel() int { return g.BitsPerPixel / 8 }

// Validate checks that every visible pixel is addressable within Size.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Errorf(`invalid resolution %dx%d`, g.Width, g.Height)
	}
	if g.BitsPerPixel < 8 || g.BitsPerPixel > 32 || g.BitsPerPixel%8 != 0 {
		return errors.WrapPrefix(consts.ErrUnsupportedDepth, fmt.Sprintf(`%d bpp`, g.BitsPerPixel), 0)
	}
	if g.Stride < g.Width*g.BytesPerPixel() {
		return errors.Errorf(`line length %d shorter than %d pixels of %d bytes`, g.Stride, g.Width, g.BytesPerPixel())
	}
	if g.Size < g.Height*g.Stride {
		return errors.Errorf(`buffer length %d shorter than %d rows of %d bytes`, g.Size, g.Height, g.Stride)
	}
	return nil
}

func (g Geometry) String() string {
	return fmt.Sprintf(`%dx%d %dbpp stride=%d size=%d`, g.Width, g.Height, g.BitsPerPixel, g.Stride, g.Size)
}
