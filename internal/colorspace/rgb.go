package colorspace

// rgbSpace is the conversion hub. Its components are device values in
// [0,255], so conversion and scaling are both the identity.
type rgbSpace struct{}

var (
	rgbBounds  = bounds{lo: [3]float32{0, 0, 0}, hi: [3]float32{deviceMax, deviceMax, deviceMax}}
	rgbFactors = factors{1, 1, 1}
)

func (rgbSpace) Kind() Kind { return RGB }

func (rgbSpace) ComponentNames() [3]string {
	return [3]string{"Red", "Green", "Blue"}
}

func (rgbSpace) ToRGBPixel(p Pixel) Pixel   { return p }
func (rgbSpace) FromRGBPixel(p Pixel) Pixel { return p }

func (rgbSpace) ToRGB(g *Grid) *Grid   { return g.Clone() }
func (rgbSpace) FromRGB(g *Grid) *Grid { return g.Clone() }

func (rgbSpace) ScaleFrom256(g *Grid) (*Grid, error) { return scaleFrom(g, rgbFactors) }
func (rgbSpace) ScaleTo256(g *Grid) (*Grid, error)   { return scaleTo(g, rgbFactors) }

func (rgbSpace) Check(g *Grid) bool { return checkBounds(g, rgbBounds) }
