package imaging

import (
	"fmt"
	"image"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/colorspace-mcp/internal/colorspace"
)

// RGBColor is a display color with 8-bit channels.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return strings.ToUpper(col.Hex())
}

// ColorResult describes one pixel in its native color space and as
// displayable RGB.
//
// Components are the raw values stored in the image, labeled by
// ComponentNames. RGB and Hex are what Bitmap would display for the pixel:
// converted to RGB, rounded and clamped to 8 bits.
type ColorResult struct {
	Space          string     `json:"space"`           // Color space name, e.g. "HSL"
	Components     [3]float32 `json:"components"`      // Native component values
	ComponentNames [3]string  `json:"component_names"` // Labels for Components
	InRange        bool       `json:"in_range"`        // Whether the pixel passes the space's Check
	Hex            string     `json:"hex"`             // Display color "#RRGGBB"
	RGB            RGBColor   `json:"rgb"`             // Display color components
}

// SampleColor describes the pixel at (x, y). Coordinates outside the image
// fail with an error wrapping colorspace.ErrIndexOutOfRange.
func SampleColor(img *Image, x, y int) (*ColorResult, error) {
	p, err := img.At(x, y)
	if err != nil {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds: %w", x, y, err)
	}
	return describePixel(img.Space(), p), nil
}

func describePixel(s colorspace.Space, p colorspace.Pixel) *ColorResult {
	single, _ := colorspace.GridFromPixels(1, 1, []colorspace.Pixel{p})
	rgb := toRGBColor(s, p)
	return &ColorResult{
		Space:          s.Kind().String(),
		Components:     p.Components(),
		ComponentNames: s.ComponentNames(),
		InRange:        s.Check(single),
		Hex:            rgb.Hex(),
		RGB:            rgb,
	}
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The pixel at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti reads pixels at multiple coordinates in a single call.
//
// On error no partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img *Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a pixel rectangle. (X1, Y1) is inclusive and (X2, Y2) is
// exclusive, as with image.Rectangle.
type Region struct {
	X1, Y1 int
	X2, Y2 int
}

func (r Region) rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string     `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64    `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor   `json:"rgb"`        // RGB components (quantized)
	Components [3]float32 `json:"components"` // Quantized color in the image's space
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Space          string           `json:"space"`
	ComponentNames [3]string        `json:"component_names"`
	Colors         []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common display colors from an image or
// region.
//
// Parameters:
//   - img: The source image, in any color space.
//   - count: Maximum number of colors to return.
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// Returns:
//   - *DominantColorsResult: The dominant colors sorted by frequency. Each
//     color is also expressed in the image's own color space.
//   - error: Non-nil if the region is empty or outside the image.
//
// # Color Quantization
//
// Pixels are rendered to 8-bit RGB as Bitmap does, then each component is
// quantized as (value / 16) * 16 so that nearby colors group together.
// Ties in frequency are ordered by hex value.
func DominantColors(img *Image, count int, region *Region) (*DominantColorsResult, error) {
	bitmap := img.Bitmap()
	bounds := bitmap.Bounds()
	if region != nil {
		r := region.rect()
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				region.X1, region.Y1, region.X2, region.Y2,
				bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		bounds = r
	}

	colorCounts := make(map[RGBColor]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := bitmap.PixOffset(x, y)
			// Quantize to reduce color space (group similar colors)
			c := RGBColor{
				R: bitmap.Pix[i+0] / 16 * 16,
				G: bitmap.Pix[i+1] / 16 * 16,
				B: bitmap.Pix[i+2] / 16 * 16,
			}
			colorCounts[c]++
			totalPixels++
		}
	}

	space := img.Space()
	colors := make([]ColorFrequency, 0, len(colorCounts))
	for c, cnt := range colorCounts {
		native := space.FromRGBPixel(colorspace.NewPixel(float32(c.R), float32(c.G), float32(c.B)))
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(cnt) / float64(totalPixels) * 100,
			RGB:        c,
			Components: native.Components(),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{
		Space:          space.Kind().String(),
		ComponentNames: space.ComponentNames(),
		Colors:         colors,
	}, nil
}
