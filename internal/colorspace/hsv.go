package colorspace

import "math"

// hsvSpace is the Hue/Saturation/Value model.
//
//   - C1: hue in degrees, [0,360]
//   - C2: saturation, [0,1]
//   - C3: value, [0,1]
type hsvSpace struct{}

// HSV shares the HSL domain and scaling factors.
var hsvBounds = hslBounds

func (hsvSpace) Kind() Kind { return HSV }

func (hsvSpace) ComponentNames() [3]string {
	return [3]string{"Hue", "Saturation", "Value"}
}

// ToRGBPixel converts an HSV pixel to RGB in [0,255].
//
// Saturation and value are handled as percentages. The hexagon sector is
// floor(H/60) mod 6 and the position inside the sector uses the integer
// part of the hue only. Hues of 360 and above wrap around. A negative hue
// gives a negative sector, matches none and yields black, unlike HSL, which
// falls back to its gray level.
func (hsvSpace) ToRGBPixel(p Pixel) Pixel {
	h := float64(p.C1)
	s := float64(p.C2) * 100
	v := float64(p.C3) * 100

	hi := int(math.Floor(h/60)) % 6
	vmin := (100 - s) * v / 100
	a := (v - vmin) * float64(int(math.Floor(h))%60) / 60
	vinc := vmin + a
	vdec := v - a

	var r, g, b float64
	switch hi {
	case 0:
		r, g, b = v, vinc, vmin
	case 1:
		r, g, b = vdec, v, vmin
	case 2:
		r, g, b = vmin, v, vinc
	case 3:
		r, g, b = vmin, vdec, v
	case 4:
		r, g, b = vinc, vmin, v
	case 5:
		r, g, b = v, vmin, vdec
	}

	const k = deviceMax / 100.0
	return Pixel{C1: float32(r * k), C2: float32(g * k), C3: float32(b * k)}
}

// FromRGBPixel converts an RGB pixel in [0,255] to HSV. Achromatic input
// has hue 0 and saturation 0. The hue is always in [0,360).
func (hsvSpace) FromRGBPixel(p Pixel) Pixel {
	r := float64(p.C1) / deviceMax
	g := float64(p.C2) / deviceMax
	b := float64(p.C3) / deviceMax

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min

	var h, s float64
	v := max

	if delta != 0 {
		if max != 0 {
			s = 1 - min/max
		}

		switch max {
		case r:
			h = 60 * (g - b) / delta
			if g < b {
				h += 360
			}
		case g:
			h = 60*(b-r)/delta + 120
		case b:
			h = 60*(r-g)/delta + 240
		}
	}

	return Pixel{C1: float32(h), C2: float32(s), C3: float32(v)}
}

func (s hsvSpace) ToRGB(g *Grid) *Grid   { return mapPixels(g, s.ToRGBPixel) }
func (s hsvSpace) FromRGB(g *Grid) *Grid { return mapPixels(g, s.FromRGBPixel) }

func (hsvSpace) ScaleFrom256(g *Grid) (*Grid, error) { return scaleFrom(g, hueFactors) }
func (hsvSpace) ScaleTo256(g *Grid) (*Grid, error)   { return scaleTo(g, hueFactors) }

func (hsvSpace) Check(g *Grid) bool { return checkBounds(g, hsvBounds) }
