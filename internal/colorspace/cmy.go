package colorspace

// cmySpace is the subtractive Cyan/Magenta/Yellow model. Components are
// normalized to [0,1]; 0 means no ink and 1 full ink.
type cmySpace struct{}

var (
	cmyBounds  = bounds{lo: [3]float32{0, 0, 0}, hi: [3]float32{1, 1, 1}}
	cmyFactors = factors{deviceMax, deviceMax, deviceMax}
)

func (cmySpace) Kind() Kind { return CMY }

func (cmySpace) ComponentNames() [3]string {
	return [3]string{"Cyan", "Magenta", "Yellow"}
}

func (cmySpace) ToRGBPixel(p Pixel) Pixel {
	return Pixel{
		C1: (1 - p.C1) * deviceMax,
		C2: (1 - p.C2) * deviceMax,
		C3: (1 - p.C3) * deviceMax,
	}
}

func (cmySpace) FromRGBPixel(p Pixel) Pixel {
	return Pixel{
		C1: 1 - p.C1/deviceMax,
		C2: 1 - p.C2/deviceMax,
		C3: 1 - p.C3/deviceMax,
	}
}

func (s cmySpace) ToRGB(g *Grid) *Grid   { return mapPixels(g, s.ToRGBPixel) }
func (s cmySpace) FromRGB(g *Grid) *Grid { return mapPixels(g, s.FromRGBPixel) }

func (cmySpace) ScaleFrom256(g *Grid) (*Grid, error) { return scaleFrom(g, cmyFactors) }
func (cmySpace) ScaleTo256(g *Grid) (*Grid, error)   { return scaleTo(g, cmyFactors) }

func (cmySpace) Check(g *Grid) bool { return checkBounds(g, cmyBounds) }
