package colorspace

import "math"

// hslSpace is the Hue/Saturation/Lightness model.
//
//   - C1: hue in degrees, [0,360]
//   - C2: saturation, [0,1]
//   - C3: lightness, [0,1]
type hslSpace struct{}

var (
	hslBounds = bounds{lo: [3]float32{0, 0, 0}, hi: [3]float32{360, 1, 1}}

	// hue maps 360 degrees onto 255 device units
	hueFactors = factors{deviceMax / 360.0, deviceMax, deviceMax}
)

func (hslSpace) Kind() Kind { return HSL }

func (hslSpace) ComponentNames() [3]string {
	return [3]string{"Hue", "Saturation", "Lightness"}
}

// ToRGBPixel converts an HSL pixel to RGB in [0,255].
//
// The hue picks one of six half-open 60 degree sextants [k*60, (k+1)*60).
// A hue of exactly 360 is the same color as 0 and uses the first sextant.
// Hues outside [0,360] match no sextant and yield the gray level m.
func (hslSpace) ToRGBPixel(p Pixel) Pixel {
	h, s, l := float64(p.C1), float64(p.C2), float64(p.C3)
	if h == 360 {
		h = 0
	}

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case 0 <= h && h < 60:
		r, g, b = c, x, 0
	case 60 <= h && h < 120:
		r, g, b = x, c, 0
	case 120 <= h && h < 180:
		r, g, b = 0, c, x
	case 180 <= h && h < 240:
		r, g, b = 0, x, c
	case 240 <= h && h < 300:
		r, g, b = x, 0, c
	case 300 <= h && h < 360:
		r, g, b = c, 0, x
	}

	return Pixel{
		C1: float32((r + m) * deviceMax),
		C2: float32((g + m) * deviceMax),
		C3: float32((b + m) * deviceMax),
	}
}

// FromRGBPixel converts an RGB pixel in [0,255] to HSL. Achromatic input
// (all channels equal) has hue 0 and saturation 0.
func (hslSpace) FromRGBPixel(p Pixel) Pixel {
	r := float64(p.C1) / deviceMax
	g := float64(p.C2) / deviceMax
	b := float64(p.C3) / deviceMax

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min

	var h, s float64
	l := (max + min) / 2

	if delta != 0 {
		if l < 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2 - max - min)
		}

		switch max {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		case b:
			h = 4 + (r-g)/delta
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}

	return Pixel{C1: float32(h), C2: float32(s), C3: float32(l)}
}

func (s hslSpace) ToRGB(g *Grid) *Grid   { return mapPixels(g, s.ToRGBPixel) }
func (s hslSpace) FromRGB(g *Grid) *Grid { return mapPixels(g, s.FromRGBPixel) }

func (hslSpace) ScaleFrom256(g *Grid) (*Grid, error) { return scaleFrom(g, hueFactors) }
func (hslSpace) ScaleTo256(g *Grid) (*Grid, error)   { return scaleTo(g, hueFactors) }

func (hslSpace) Check(g *Grid) bool { return checkBounds(g, hslBounds) }
