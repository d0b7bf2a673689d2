package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srlehn/fbclock/glyph"
	"github.com/srlehn/fbclock/internal/errors"
)

// Surface is a bounds checked view of a pixel buffer.
// Row offsets are always computed from the stride.
type Surface struct {
	pix  []byte
	geom Geometry
	bpp  int // bytes per pixel
}

// NewSurface wraps pix, which must hold at least geom.Size bytes.
func NewSurface(pix []byte, geom Geometry) (*Surface, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(pix) < geom.Size {
		return nil, errors.Errorf(`pixel buffer of %d bytes shorter than buffer length %d`, len(pix), geom.Size)
	}
	return &Surface{
		pix:  pix[:geom.Size:geom.Size],
		geom: geom,
		bpp:  geom.BytesPerPixel(),
	}, nil
}

func (s *Surface) Geometry() Geometry {
	if s == nil {
		return Geometry{}
	}
	return s.geom
}

// offset returns the byte offset of the pixel and whether all of its
// bytes lie within the visible area and the buffer.
func (s *Surface) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.geom.Width || y >= s.geom.Height {
		return 0, false
	}
	off := y*s.geom.Stride + x*s.bpp
	if off+s.bpp > len(s.pix) {
		return 0, false
	}
	return off, true
}

// DrawChar rasterizes the glyph of code with its top left corner at x, y.
// Set bits become white (all bytes 0xff), unset bits black.
// Pixels off the visible area are skipped.
func (s *Surface) DrawChar(x, y int, code byte) {
	if s == nil {
		return
	}
	g := glyph.Lookup(code)
	for row := 0; row < glyph.Height; row++ {
		for col := 0; col < glyph.Width; col++ {
			off, ok := s.offset(x+col, y+row)
			if !ok {
				continue
			}
			var fill byte
			if g.Set(row, col) {
				fill = 0xff
			}
			px := s.pix[off : off+s.bpp]
			for i := range px {
				px[i] = fill
			}
		}
	}
}

// ClearStrip zeroes glyph.Height full rows (stride bytes each) starting at row y.
func (s *Surface) ClearStrip(y int) {
	if s == nil {
		return
	}
	top, bottom := max(y, 0), min(y+glyph.Height, s.geom.Height)
	if top >= bottom {
		return
	}
	lo, hi := top*s.geom.Stride, min(bottom*s.geom.Stride, len(s.pix))
	if lo >= hi {
		return
	}
	clear(s.pix[lo:hi])
}

// StripBounds is the pixel rectangle ClearStrip(y) covers in the visible area.
func (s *Surface) StripBounds(y int) image.Rectangle {
	return image.Rect(0, y, s.geom.Width, y+glyph.Height).Intersect(s.Bounds())
}

var _ draw.Image = (*Surface)(nil)

func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

func (s *Surface) Bounds() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, s.geom.Width, s.geom.Height)
}

// At decodes the pixel assuming the common little endian packed formats:
// gray (8 bpp), RGB565 (16 bpp), BGR(X) (24 and 32 bpp).
func (s *Surface) At(x, y int) color.Color {
	if s == nil {
		return color.RGBA{}
	}
	off, ok := s.offset(x, y)
	if !ok {
		return color.RGBA{}
	}
	p := s.pix[off : off+s.bpp]
	switch s.bpp {
	case 1:
		return color.RGBA{R: p[0], G: p[0], B: p[0], A: 0xff}
	case 2:
		v := uint16(p[0]) | uint16(p[1])<<8
		r, g, b := byte(v>>11&0x1f), byte(v>>5&0x3f), byte(v&0x1f)
		return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
	default:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: 0xff}
	}
}

// Set writes a monochrome pixel: colors with a luminance of at least half
// become white (all bytes 0xff), the rest black. Pixels off the visible
// area are skipped.
func (s *Surface) Set(x, y int, c color.Color) {
	if s == nil || c == nil {
		return
	}
	off, ok := s.offset(x, y)
	if !ok {
		return
	}
	var fill byte
	if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
		fill = 0xff
	}
	px := s.pix[off : off+s.bpp]
	for i := range px {
		px[i] = fill
	}
}

// SubImage returns the part of the surface visible through r.
func (s *Surface) SubImage(r image.Rectangle) image.Image {
	return &subImage{Surface: s, rect: r.Intersect(s.Bounds())}
}

type subImage struct {
	*Surface
	rect image.Rectangle
}

func (i *subImage) Bounds() image.Rectangle { return i.rect }

func (i *subImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.rect)) {
		return color.RGBA{}
	}
	return i.Surface.At(x, y)
}
