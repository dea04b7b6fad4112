package colorspace

// Device units are the [0,255] range used for 8-bit channel storage.
const deviceMax = 255

// bounds is the closed per-component domain of a color space.
type bounds struct {
	lo, hi [3]float32
}

func (b bounds) contains(p Pixel) bool {
	c := p.Components()
	for i := range c {
		// written so that NaN fails
		if !(c[i] >= b.lo[i] && c[i] <= b.hi[i]) {
			return false
		}
	}
	return true
}

func checkBounds(g *Grid, b bounds) bool {
	return allPixels(g, b.contains)
}

// factors holds, per component, the number of device units per native unit.
// ScaleFrom256 divides by it and ScaleTo256 multiplies.
type factors [3]float32

func nonNegative(p Pixel) bool {
	return !(p.C1 < 0 || p.C2 < 0 || p.C3 < 0)
}

func scaleFrom(g *Grid, f factors) (*Grid, error) {
	return mapPixelsErr(g, func(p Pixel) (Pixel, bool) {
		q := Pixel{C1: p.C1 / f[0], C2: p.C2 / f[1], C3: p.C3 / f[2]}
		return q, nonNegative(q)
	})
}

func scaleTo(g *Grid, f factors) (*Grid, error) {
	return mapPixelsErr(g, func(p Pixel) (Pixel, bool) {
		q := Pixel{C1: p.C1 * f[0], C2: p.C2 * f[1], C3: p.C3 * f[2]}
		return q, nonNegative(q)
	})
}
