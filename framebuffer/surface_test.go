package framebuffer_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbclock/framebuffer"
	"github.com/srlehn/fbclock/glyph"
	"github.com/srlehn/fbclock/internal/consts"
	"github.com/srlehn/fbclock/internal/errors"
)

// fakeDevice is a surface over a plain byte slice. Rows are padded so
// that stride exceeds the width and a guard region follows the buffer.
type fakeDevice struct {
	geom    framebuffer.Geometry
	backing []byte // buffer plus guard bytes
	pix     []byte // the part handed to the surface
	surface *framebuffer.Surface
}

const guardLen = 64

func newFakeDevice(t *testing.T, w, h, bitsPerPixel, padding int) *fakeDevice {
	t.Helper()
	bpp := bitsPerPixel / 8
	geom := framebuffer.Geometry{
		Width:        w,
		Height:       h,
		BitsPerPixel: bitsPerPixel,
		Stride:       w*bpp + padding,
	}
	geom.Size = geom.Stride * h
	backing := bytes.Repeat([]byte{0xa5}, geom.Size+guardLen)
	pix := backing[:geom.Size]
	s, err := framebuffer.NewSurface(pix, geom)
	require.NoError(t, err)
	return &fakeDevice{geom: geom, backing: backing, pix: pix, surface: s}
}

func (f *fakeDevice) pixel(x, y int) []byte {
	bpp := f.geom.BytesPerPixel()
	off := y*f.geom.Stride + x*bpp
	return f.pix[off : off+bpp]
}

func (f *fakeDevice) assertGuardIntact(t *testing.T) {
	t.Helper()
	assert.Equal(t, bytes.Repeat([]byte{0xa5}, guardLen), f.backing[f.geom.Size:], `write past buffer end`)
}

// assertPadding checks that no row padding byte was touched.
func (f *fakeDevice) assertPadding(t *testing.T) {
	t.Helper()
	used := f.geom.Width * f.geom.BytesPerPixel()
	for y := 0; y < f.geom.Height; y++ {
		row := f.pix[y*f.geom.Stride : (y+1)*f.geom.Stride]
		for _, b := range row[used:] {
			if !assert.Equal(t, byte(0xa5), b, `row padding written in row %d`, y) {
				return
			}
		}
	}
}

func TestDrawCharAllDepths(t *testing.T) {
	for _, bits := range []int{8, 16, 24, 32} {
		f := newFakeDevice(t, 40, 20, bits, 3)
		const x, y = 9, 5
		f.surface.DrawChar(x, y, 'A')
		g := glyph.Lookup('A')
		bpp := bits / 8

		written := 0
		for py := 0; py < f.geom.Height; py++ {
			for px := 0; px < f.geom.Width; px++ {
				p := f.pixel(px, py)
				inCell := px >= x && px < x+glyph.Width && py >= y && py < y+glyph.Height
				if !inCell {
					assert.Equal(t, bytes.Repeat([]byte{0xa5}, bpp), p, `%d bpp: pixel %d,%d outside the cell`, bits, px, py)
					continue
				}
				written++
				want := byte(0x00)
				if g.Set(py-y, px-x) {
					want = 0xff
				}
				assert.Equal(t, bytes.Repeat([]byte{want}, bpp), p, `%d bpp: pixel %d,%d`, bits, px, py)
			}
		}
		assert.Equal(t, glyph.Width*glyph.Height, written)
		f.assertPadding(t)
		f.assertGuardIntact(t)
	}
}

func TestDrawCharClipsAtEdges(t *testing.T) {
	// odd stride: 3 bytes per pixel and 5 bytes of padding
	f := newFakeDevice(t, 13, 11, 24, 5)
	for _, pos := range []image.Point{
		{-4, -4}, {-7, 0}, {9, 7}, {12, 10}, {13, 0}, {0, 11}, {-100, -100}, {100, 100},
	} {
		f.surface.DrawChar(pos.X, pos.Y, '#')
	}
	f.assertPadding(t)
	f.assertGuardIntact(t)
}

func TestClearStrip(t *testing.T) {
	f := newFakeDevice(t, 16, 24, 32, 4)
	const y = 10
	f.surface.ClearStrip(y)

	for i, b := range f.pix {
		row := i / f.geom.Stride
		if row >= y && row < y+glyph.Height {
			if !assert.Zero(t, b, `byte %d in strip`, i) {
				break
			}
		} else if !assert.Equal(t, byte(0xa5), b, `byte %d outside strip`, i) {
			break
		}
	}
	f.assertGuardIntact(t)
}

func TestClearStripIdempotent(t *testing.T) {
	f := newFakeDevice(t, 16, 24, 16, 2)
	f.surface.DrawChar(0, 3, 'W')
	f.surface.ClearStrip(3)
	once := append([]byte(nil), f.pix...)
	f.surface.ClearStrip(3)
	assert.Equal(t, once, f.pix)
	for y := 3; y < 3+glyph.Height; y++ {
		assert.Equal(t, make([]byte, f.geom.Stride), f.pix[y*f.geom.Stride:(y+1)*f.geom.Stride])
	}
}

func TestClearStripClamped(t *testing.T) {
	f := newFakeDevice(t, 8, 10, 8, 1)
	f.surface.ClearStrip(6) // only rows 6..9 exist
	f.surface.ClearStrip(-5)
	f.surface.ClearStrip(-100)
	f.surface.ClearStrip(100)
	f.assertGuardIntact(t)
	assert.Equal(t, make([]byte, 4*f.geom.Stride), f.pix[6*f.geom.Stride:])
	assert.Equal(t, make([]byte, 3*f.geom.Stride), f.pix[:3*f.geom.Stride])
	assert.Equal(t, bytes.Repeat([]byte{0xa5}, 3*f.geom.Stride), f.pix[3*f.geom.Stride:6*f.geom.Stride])
}

func TestTextPattern(t *testing.T) {
	f := newFakeDevice(t, 64, 16, 32, 8)
	const y = 4
	text := `12:0`
	f.surface.ClearStrip(y)
	for i := len(text) - 1; i >= 0; i-- {
		f.surface.DrawChar(2+i*glyph.Width, y, text[i])
	}
	for i := 0; i < len(text); i++ {
		g := glyph.Lookup(text[i])
		for row := 0; row < glyph.Height; row++ {
			for col := 0; col < glyph.Width; col++ {
				want := []byte{0, 0, 0, 0}
				if g.Set(row, col) {
					want = []byte{0xff, 0xff, 0xff, 0xff}
				}
				assert.Equal(t, want, f.pixel(2+i*glyph.Width+col, y+row))
			}
		}
	}

	// an empty text leaves a black strip
	f.surface.ClearStrip(y)
	for _, c := range []byte(``) {
		f.surface.DrawChar(0, y, c)
	}
	assert.Equal(t, make([]byte, glyph.Height*f.geom.Stride), f.pix[y*f.geom.Stride:(y+glyph.Height)*f.geom.Stride])
}

func TestAt(t *testing.T) {
	f := newFakeDevice(t, 16, 8, 32, 0)
	f.surface.ClearStrip(0)
	f.surface.DrawChar(0, 0, '_')
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, f.surface.At(0, 7))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, f.surface.At(0, 0))
	assert.Equal(t, color.RGBA{}, f.surface.At(-1, 0))

	f16 := newFakeDevice(t, 8, 8, 16, 0)
	f16.surface.ClearStrip(0)
	f16.surface.DrawChar(0, 0, '_')
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, f16.surface.At(3, 7))

	sub := f.surface.SubImage(image.Rect(0, 4, 100, 8))
	assert.Equal(t, image.Rect(0, 4, 16, 8), sub.Bounds())
	assert.Equal(t, color.RGBA{}, sub.At(0, 0))
	assert.Equal(t, image.Rect(0, 4, 16, 8), f.surface.StripBounds(4))
}

func TestGeometryValidate(t *testing.T) {
	valid := framebuffer.Geometry{Width: 10, Height: 10, BitsPerPixel: 32, Stride: 40, Size: 400}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, 4, valid.BytesPerPixel())

	tests := map[string]framebuffer.Geometry{
		`zero width`:    {Width: 0, Height: 10, BitsPerPixel: 32, Stride: 40, Size: 400},
		`short stride`:  {Width: 10, Height: 10, BitsPerPixel: 32, Stride: 39, Size: 400},
		`short buffer`:  {Width: 10, Height: 10, BitsPerPixel: 32, Stride: 40, Size: 399},
		`4 bpp`:         {Width: 10, Height: 10, BitsPerPixel: 4, Stride: 40, Size: 400},
		`15 bpp`:        {Width: 10, Height: 10, BitsPerPixel: 15, Stride: 40, Size: 400},
		`64 bpp`:        {Width: 10, Height: 10, BitsPerPixel: 64, Stride: 80, Size: 800},
		`negative size`: {Width: 10, Height: -1, BitsPerPixel: 32, Stride: 40, Size: 400},
	}
	for name, g := range tests {
		assert.Error(t, g.Validate(), name)
	}
	assert.True(t, errors.Is(tests[`15 bpp`].Validate(), consts.ErrUnsupportedDepth))
}

func TestNewSurfaceShortBuffer(t *testing.T) {
	geom := framebuffer.Geometry{Width: 4, Height: 4, BitsPerPixel: 8, Stride: 4, Size: 16}
	_, err := framebuffer.NewSurface(make([]byte, 15), geom)
	assert.Error(t, err)
	s, err := framebuffer.NewSurface(make([]byte, 32), geom)
	require.NoError(t, err)
	assert.Equal(t, geom, s.Geometry())
}

func TestSet(t *testing.T) {
	for _, bits := range []int{8, 16, 24, 32} {
		f := newFakeDevice(t, 12, 6, bits, 5)
		var img draw.Image = f.surface
		img.Set(3, 2, color.White)
		img.Set(4, 2, color.Gray{Y: 0x90})
		img.Set(5, 2, color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
		img.Set(-1, 0, color.White)
		img.Set(12, 5, color.White)
		img.Set(0, 6, color.White)

		bpp := bits / 8
		assert.Equal(t, bytes.Repeat([]byte{0xff}, bpp), f.pixel(3, 2), `%d bpp`, bits)
		assert.Equal(t, bytes.Repeat([]byte{0xff}, bpp), f.pixel(4, 2), `%d bpp`, bits)
		assert.Equal(t, bytes.Repeat([]byte{0x00}, bpp), f.pixel(5, 2), `%d bpp`, bits)
		assert.Equal(t, bytes.Repeat([]byte{0xa5}, bpp), f.pixel(6, 2), `%d bpp`, bits)
		f.assertPadding(t)
		f.assertGuardIntact(t)

		r, g, b, _ := f.surface.At(3, 2).RGBA()
		assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, `%d bpp`, bits)
	}
}
