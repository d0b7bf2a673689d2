//go:build linux

package framebuffer

// <linux/fb.h> ioctls, 0x46 is 'F'
const (
	getVariableScreenInfo uintptr = 0x4600
	getFixedScreenInfo    uintptr = 0x4602
)

// struct fb_fix_screeninfo
type fixedScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr // physical start of frame buffer memory
	SmemLen      uint32  // length of frame buffer memory
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32 // bytes per row
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

type bitField struct {
	Offset, Length, MsbRight uint32
}

// struct fb_var_screeninfo
type variableScreenInfo struct {
	XRes, YRes                 uint32 // visible resolution
	XResVirtual, YResVirtual   uint32
	XOffset, YOffset           uint32
	BitsPerPixel               uint32
	Grayscale                  uint32
	Red, Green, Blue, Transp   bitField
	NonStd                     uint32
	Activate                   uint32
	Height, Width              uint32 // mm
	AccelFlags                 uint32
	PixClock                   uint32
	LeftMargin, RightMargin    uint32
	UpperMargin, LowerMargin   uint32
	HSyncLen, VSyncLen         uint32
	Sync, VMode, Rotate, Color uint32
	_                          [4]uint32
}

func (f *fixedScreenInfo) id() string {
	for i, b := range f.ID {
		if b == 0 {
			return string(f.ID[:i])
		}
	}
	return string(f.ID[:])
}

func geometryOf(f *fixedScreenInfo, v *variableScreenInfo) Geometry {
	return Geometry{
		Width:        int(v.XRes),
		Height:       int(v.YRes),
		BitsPerPixel: int(v.BitsPerPixel),
		Stride:       int(f.LineLength),
		Size:         int(f.SmemLen),
	}
}
