package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/colorspace-mcp/internal/colorspace"
)

// Image is a float pixel grid bound to a color space.
//
// The grid's components are interpreted by the bound Space: an Image in HSL
// stores hue, saturation and lightness, not red, green and blue. The magic
// string identifies where the data came from (for loaded files, the decoder
// format name) and is carried unchanged through every operation.
//
// An Image is not safe for concurrent mutation. Read-only methods may be
// called concurrently as long as no goroutine calls Set.
type Image struct {
	magic string
	space colorspace.Space
	grid  *colorspace.Grid
}

// NewImage creates a zeroed image of the given size.
func NewImage(magic string, space colorspace.Space, width, height int) (*Image, error) {
	if space == nil {
		return nil, errors.New("image requires a color space")
	}
	grid, err := colorspace.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Image{magic: magic, space: space, grid: grid}, nil
}

// FromGrid creates an image from existing pixel data. The grid is copied.
func FromGrid(magic string, space colorspace.Space, grid *colorspace.Grid) (*Image, error) {
	if space == nil {
		return nil, errors.New("image requires a color space")
	}
	if grid == nil {
		return nil, errors.New("image requires a pixel grid")
	}
	return &Image{magic: magic, space: space, grid: grid.Clone()}, nil
}

// FromImage converts a decoded image into an RGB Image with components in
// [0,255]. Alpha is ignored.
func FromImage(src image.Image, magic string) *Image {
	rgba := clone.AsRGBA(src)
	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := make([]colorspace.Pixel, w*h)
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := pix[y*w : (y+1)*w]
			for x := range row {
				i := rgba.PixOffset(b.Min.X+x, b.Min.Y+y)
				s := rgba.Pix[i : i+3 : i+3]
				row[x] = colorspace.NewPixel(float32(s[0]), float32(s[1]), float32(s[2]))
			}
		}
	})

	grid, err := colorspace.GridFromPixels(w, h, pix)
	if err != nil {
		// pix is sized from the bounds, so this cannot happen
		panic(err)
	}
	return &Image{magic: magic, space: colorspace.MustLookup(colorspace.RGB), grid: grid}
}

// Magic returns the opaque format tag.
func (img *Image) Magic() string { return img.magic }

// Space returns the color space the pixels are expressed in.
func (img *Image) Space() colorspace.Space { return img.space }

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.grid.Width() }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.grid.Height() }

// At returns the pixel at (x, y). Out-of-range coordinates fail with an
// error wrapping colorspace.ErrIndexOutOfRange.
func (img *Image) At(x, y int) (colorspace.Pixel, error) {
	return img.grid.At(x, y)
}

// Set stores p at (x, y). Out-of-range coordinates fail with an error
// wrapping colorspace.ErrIndexOutOfRange.
func (img *Image) Set(x, y int, p colorspace.Pixel) error {
	return img.grid.Set(x, y, p)
}

// Pixels returns a copy of the pixel grid.
func (img *Image) Pixels() *colorspace.Grid {
	return img.grid.Clone()
}

// Convert returns a copy of the image expressed in color space k. The
// pixels are routed through RGB. Converting to the current space returns an
// unchanged copy.
func (img *Image) Convert(k colorspace.Kind) (*Image, error) {
	to, err := colorspace.Lookup(k)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	if to.Kind() == img.space.Kind() {
		return &Image{magic: img.magic, space: img.space, grid: img.grid.Clone()}, nil
	}
	return &Image{
		magic: img.magic,
		space: to,
		grid:  colorspace.Convert(img.grid, img.space, to),
	}, nil
}

// Component extracts component n (1, 2 or 3) as a standalone grayscale
// image. The component is scaled to device range with the space's
// ScaleTo256 and copied into all three channels of an RGB image.
func (img *Image) Component(n int) (*Image, error) {
	if n < 1 || n > 3 {
		return nil, fmt.Errorf("invalid component %d: must be 1, 2 or 3", n)
	}

	scaled, err := img.space.ScaleTo256(img.grid)
	if err != nil {
		return nil, fmt.Errorf("failed to scale %s component %d: %w", img.space.Kind(), n, err)
	}

	pix := scaled.Pixels()
	for i, p := range pix {
		v := p.Component(n - 1)
		pix[i] = colorspace.NewPixel(v, v, v)
	}

	gray, err := colorspace.GridFromPixels(scaled.Width(), scaled.Height(), pix)
	if err != nil {
		return nil, err
	}
	return &Image{magic: img.magic, space: colorspace.MustLookup(colorspace.RGB), grid: gray}, nil
}

// ComponentStats summarizes the value range of each component.
type ComponentStats struct {
	// Space is the name of the color space the values are expressed in.
	Space string `json:"space"`

	// ComponentNames labels Min and Max.
	ComponentNames [3]string `json:"component_names"`

	// Min and Max are the smallest and largest value of each component.
	// Both are zero for an empty image.
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`

	// InRange reports whether the whole image passes the space's Check.
	InRange bool `json:"in_range"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// Stats returns per-component minima and maxima and the validation result.
func (img *Image) Stats() ComponentStats {
	st := ComponentStats{
		Space:          img.space.Kind().String(),
		ComponentNames: img.space.ComponentNames(),
		InRange:        img.space.Check(img.grid),
		Width:          img.Width(),
		Height:         img.Height(),
	}

	pix := img.grid.Pixels()
	if len(pix) == 0 {
		return st
	}

	st.Min = pix[0].Components()
	st.Max = st.Min
	for _, p := range pix[1:] {
		c := p.Components()
		for i := range c {
			if c[i] < st.Min[i] {
				st.Min[i] = c[i]
			}
			if c[i] > st.Max[i] {
				st.Max[i] = c[i]
			}
		}
	}
	return st
}

// Bitmap renders the image for display. The pixels are converted to RGB and
// every channel is rounded to the nearest integer and clamped to [0,255].
// Alpha is always opaque.
func (img *Image) Bitmap() *image.RGBA {
	rgb := img.space.ToRGB(img.grid)
	w, h := rgb.Width(), rgb.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				p, _ := rgb.At(x, y)
				i := out.PixOffset(x, y)
				out.Pix[i+0] = toByte(p.C1)
				out.Pix[i+1] = toByte(p.C2)
				out.Pix[i+2] = toByte(p.C3)
				out.Pix[i+3] = 0xff
			}
		}
	})
	return out
}

// toByte rounds v to the nearest integer and clamps it to [0,255]. NaN maps
// to 0.
func toByte(v float32) uint8 {
	f := math.Round(float64(v))
	switch {
	case f >= 255:
		return 255
	case f > 0:
		return uint8(f)
	default:
		return 0
	}
}

// toRGBColor renders a single pixel of space s the way Bitmap does.
func toRGBColor(s colorspace.Space, p colorspace.Pixel) RGBColor {
	q := s.ToRGBPixel(p)
	return RGBColor{R: toByte(q.C1), G: toByte(q.C2), B: toByte(q.C3)}
}
