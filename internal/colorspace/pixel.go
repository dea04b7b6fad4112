package colorspace

// Pixel holds the three components of a color. What the components mean
// depends on the color space that owns the pixel: for RGB all three are
// device values in [0,255], for HSL C1 is the hue in degrees and C2, C3 are
// saturation and lightness in [0,1].
//
// The zero value is (0,0,0).
type Pixel struct {
	C1 float32 `json:"c1"`
	C2 float32 `json:"c2"`
	C3 float32 `json:"c3"`
}

// NewPixel returns a pixel with the given components.
func NewPixel(c1, c2, c3 float32) Pixel {
	return Pixel{C1: c1, C2: c2, C3: c3}
}

// Components returns the components in order.
func (p Pixel) Components() [3]float32 {
	return [3]float32{p.C1, p.C2, p.C3}
}

// Component returns component i (0-based). It panics if i is not 0, 1 or 2.
func (p Pixel) Component(i int) float32 {
	return p.Components()[i]
}
