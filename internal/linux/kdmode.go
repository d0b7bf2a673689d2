package linux

import "fmt"

// KDMode is the display mode of a linux virtual console.
type KDMode int

const (
	KDText     KDMode = 0x0
	KDGraphics KDMode = 0x1
	KDText0    KDMode = 0x2
	KDText1    KDMode = 0x3
)

func (k KDMode) String() string {
	switch k {
	case KDText:
		return `KD_TEXT`
	case KDGraphics:
		return `KD_GRAPHICS`
	case KDText0:
		return `KD_TEXT0`
	case KDText1:
		return `KD_TEXT1`
	}
	if k >= 0 {
		return fmt.Sprintf(`0x%x`, int(k))
	}
	return fmt.Sprintf(`-0x%x`, -int(k))
}

// Visible reports whether the framebuffer console is shown in this mode.
// In KD_GRAPHICS a display server owns the screen and paints over the clock.
func (k KDMode) Visible() bool { return k != KDGraphics }
