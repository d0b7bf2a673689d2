package render

import "github.com/srlehn/fbclock/glyph"

// drift band of the text's left edge
const (
	startX = 5
	minX   = 6
	maxX   = 20
)

// DisplayState is the position of the text. X drifts back and forth near
// the left margin to spread the wear on the screen.
type DisplayState struct {
	X  int
	DX int // +1 or -1
	Y  int
}

// NewDisplayState places the strip two rows above the bottom of a
// screen with the given height.
func NewDisplayState(height int) DisplayState {
	return DisplayState{
		X:  startX,
		DX: 1,
		Y:  max(height-glyph.Height-2, 0),
	}
}

// Advance moves the text by one pixel and reverses the direction once
// X leaves the band.
func (s *DisplayState) Advance() {
	s.X += s.DX
	if s.X > maxX || s.X < minX {
		s.DX = -s.DX
	}
}
