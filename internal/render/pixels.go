package render

import "image/color"

type rgba [4]byte

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (c rgba) put(buf []byte, i int) {
	copy(buf[i*4:i*4+4], c[:])
}

// FillPacked converts the first n cells of a packed bit buffer into RGBA
// pixels in buf. Cell i is bit i%64 of words[i/64].
func FillPacked(buf []byte, words []uint64, n int, on, off color.Color) {
	cOn, cOff := toRGBA(on), toRGBA(off)
	for i := 0; i < n; i++ {
		w := i >> 6
		if w < len(words) && words[w]&(1<<(uint(i)&63)) != 0 {
			cOn.put(buf, i)
			continue
		}
		cOff.put(buf, i)
	}
}

// ApplyDeltas repaints only the cells that flipped during the last step.
// Indices that fall outside buf are ignored.
func ApplyDeltas(buf []byte, alive, dead []int, on, off color.Color) {
	cOn, cOff := toRGBA(on), toRGBA(off)
	n := len(buf) / 4
	for _, i := range alive {
		if i >= 0 && i < n {
			cOn.put(buf, i)
		}
	}
	for _, i := range dead {
		if i >= 0 && i < n {
			cOff.put(buf, i)
		}
	}
}
