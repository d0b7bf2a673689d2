// Package glyph holds the 8x8 bitmap font used for the clock text.
//
// The bitmaps are the public domain font8x8 "basic" set (U+0000 to U+007F).
// Every row is one byte, the least significant bit is the leftmost pixel.
package glyph

const (
	Width  = 8
	Height = 8
)

// Glyph is the bitmap of one character.
type Glyph [Height]byte

// Set reports whether the pixel in row and column col is foreground.
func (g Glyph) Set(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return g[row]&(1<<uint(col)) != 0
}

// Lookup returns the glyph for the character code.
// Codes outside of the table map to the blank glyph.
func Lookup(code byte) Glyph {
	if int(code) >= len(basic) {
		return Glyph{}
	}
	return basic[code]
}

// Printable reports whether code has a visible or blank glyph meant for display,
// i.e. printable ASCII.
func Printable(code byte) bool { return code >= 0x20 && code < 0x7f }
