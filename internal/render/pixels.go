package render

import "image/color"

// fillBinaryRGBA expands one byte per cell into RGBA pixels in buf. Any
// nonzero cell value renders with the on color.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx := packColor(on)
	offPx := packColor(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:], px[:])
	}
}

func packColor(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
