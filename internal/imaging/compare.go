package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/colorspace-mcp/internal/colorspace"
)

// noticeableDistance is the CIE76 distance (in go-colorful's Lab scale,
// where L runs 0..1) above which two display colors count as different.
const noticeableDistance = 0.023

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareRegionsResult contains region comparison information.
type CompareRegionsResult struct {
	Space          string     `json:"space"`
	ComponentNames [3]string  `json:"component_names"`
	Region1Mean    [3]float32 `json:"region1_mean"` // mean native components
	Region2Mean    [3]float32 `json:"region2_mean"`

	SimilarityScore float64 `json:"similarity_score"`
	PixelsDifferent int     `json:"pixels_different"`
	TotalPixels     int     `json:"total_pixels"`
	SameSize        bool    `json:"same_size"`
	Region1Size     Size    `json:"region1_size"`
	Region2Size     Size    `json:"region2_size"`

	// AverageDistance is the mean CIE76 Lab distance between the display
	// colors of corresponding pixels.
	AverageDistance float64 `json:"average_distance"`
}

// CompareRegions compares two regions of an image.
//
// Corresponding pixels are paired by offset from each region's top-left
// corner over the overlap of both sizes. Pixels are compared by the Lab
// distance of their display colors, so the result does not depend on the
// space the image is stored in. The per-region means are taken over the
// stored components of the whole region.
func CompareRegions(img *Image, r1, r2 Region) (*CompareRegionsResult, error) {
	bounds := image.Rect(0, 0, img.Width(), img.Height())
	for i, r := range []Region{r1, r2} {
		if rr := r.rect(); rr.Empty() || !rr.In(bounds) {
			return nil, fmt.Errorf("region %d (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
				i+1, r.X1, r.Y1, r.X2, r.Y2, img.Width(), img.Height())
		}
	}

	w1, h1 := r1.X2-r1.X1, r1.Y2-r1.Y1
	w2, h2 := r2.X2-r2.X1, r2.Y2-r2.Y1
	minW := min(w1, w2)
	minH := min(h1, h2)

	space := img.Space()
	totalPixels := minW * minH
	pixelsDifferent := 0
	var totalDistance float64

	for dy := 0; dy < minH; dy++ {
		for dx := 0; dx < minW; dx++ {
			p1, _ := img.At(r1.X1+dx, r1.Y1+dy)
			p2, _ := img.At(r2.X1+dx, r2.Y1+dy)

			d := labColor(space, p1).DistanceLab(labColor(space, p2))
			totalDistance += d
			if d > noticeableDistance {
				pixelsDifferent++
			}
		}
	}

	similarity := 1.0 - float64(pixelsDifferent)/float64(totalPixels)
	avgDistance := totalDistance / float64(totalPixels)

	return &CompareRegionsResult{
		Space:           space.Kind().String(),
		ComponentNames:  space.ComponentNames(),
		Region1Mean:     regionMean(img, r1),
		Region2Mean:     regionMean(img, r2),
		SimilarityScore: math.Round(similarity*1000) / 1000,
		PixelsDifferent: pixelsDifferent,
		TotalPixels:     totalPixels,
		SameSize:        w1 == w2 && h1 == h2,
		Region1Size:     Size{Width: w1, Height: h1},
		Region2Size:     Size{Width: w2, Height: h2},
		AverageDistance: math.Round(avgDistance*10000) / 10000,
	}, nil
}

// labColor returns the display color of p as a go-colorful color.
func labColor(s colorspace.Space, p colorspace.Pixel) colorful.Color {
	c := toRGBColor(s, p)
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// regionMean averages the stored components of r. For HSL and HSV the hue
// is an angle, so it is averaged on the circle and wrapped into [0,360).
func regionMean(img *Image, r Region) [3]float32 {
	kind := img.Space().Kind()
	hue := kind == colorspace.HSL || kind == colorspace.HSV

	var sum [3]float64
	var sinSum, cosSum float64
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			p, _ := img.At(x, y)
			for i, v := range p.Components() {
				sum[i] += float64(v)
			}
			if hue {
				rad := float64(p.C1) * math.Pi / 180
				sinSum += math.Sin(rad)
				cosSum += math.Cos(rad)
			}
		}
	}

	n := float64((r.X2 - r.X1) * (r.Y2 - r.Y1))
	mean := [3]float32{float32(sum[0] / n), float32(sum[1] / n), float32(sum[2] / n)}
	if hue {
		mean[0] = float32(meanHue(sinSum, cosSum))
	}
	return mean
}

// meanHue turns summed unit vectors into a hue in [0,360). Hues that cancel
// out completely have no direction and report 0.
func meanHue(sinSum, cosSum float64) float64 {
	if math.Abs(sinSum) < 1e-9 && math.Abs(cosSum) < 1e-9 {
		return 0
	}
	deg := math.Atan2(sinSum, cosSum) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
