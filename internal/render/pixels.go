package render

import "image/color"

// Palette holds the RGBA bytes for live and dead cells.
type Palette struct {
	on, off [4]byte
}

// NewPalette converts the two colors to 8-bit RGBA once.
func NewPalette(on, off color.Color) Palette {
	return Palette{on: rgba8(on), off: rgba8(off)}
}

// DefaultPalette paints live cells white on black.
func DefaultPalette() Palette { return NewPalette(color.White, color.Black) }

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold at least 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		px := p.off
		if c != 0 {
			px = p.on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
