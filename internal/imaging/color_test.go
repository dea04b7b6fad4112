package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/colorspace-mcp/internal/colorspace"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// uniformImage returns an RGB Image filled with c.
func uniformImage(width, height int, c color.Color) *Image {
	return FromImage(createInMemoryImage(width, height, c), "png")
}

// patternImage returns the quadrant pattern as an RGB Image.
func patternImage(width, height int) *Image {
	return FromImage(createPatternImage(width, height), "png")
}

// convertImage converts img or fails the test.
func convertImage(t *testing.T, img *Image, k colorspace.Kind) *Image {
	t.Helper()
	out, err := img.Convert(k)
	if err != nil {
		t.Fatalf("Convert(%v) failed: %v", k, err)
	}
	return out
}

func TestSampleColor(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Space != "RGB" {
		t.Errorf("Space: got %s, want RGB", result.Space)
	}
	if result.Components != [3]float32{255, 128, 64} {
		t.Errorf("Components: got %v, want [255 128 64]", result.Components)
	}
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if !result.InRange {
		t.Error("InRange should be true for a loaded RGB pixel")
	}
}

func TestSampleColor_InSpace(t *testing.T) {
	tests := []struct {
		name  string
		space colorspace.Kind
		color color.RGBA
		want  [3]float32
		names [3]string
	}{
		{"red in HSL", colorspace.HSL, color.RGBA{255, 0, 0, 255}, [3]float32{0, 1, 0.5}, [3]string{"Hue", "Saturation", "Lightness"}},
		{"green in HSV", colorspace.HSV, color.RGBA{0, 255, 0, 255}, [3]float32{120, 1, 1}, [3]string{"Hue", "Saturation", "Value"}},
		{"blue in CMY", colorspace.CMY, color.RGBA{0, 0, 255, 255}, [3]float32{1, 1, 0}, [3]string{"Cyan", "Magenta", "Yellow"}},
		{"white in HSL", colorspace.HSL, color.RGBA{255, 255, 255, 255}, [3]float32{0, 0, 1}, [3]string{"Hue", "Saturation", "Lightness"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := convertImage(t, uniformImage(10, 10, tt.color), tt.space)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			for i := range tt.want {
				if math.Abs(float64(result.Components[i]-tt.want[i])) > 1e-4 {
					t.Errorf("component %d: got %v, want %v", i, result.Components[i], tt.want[i])
				}
			}
			if result.ComponentNames != tt.names {
				t.Errorf("ComponentNames: got %v, want %v", result.ComponentNames, tt.names)
			}
			want := RGBColor{R: tt.color.R, G: tt.color.G, B: tt.color.B}
			if result.RGB != want {
				t.Errorf("display RGB: got %+v, want %+v", result.RGB, want)
			}
		})
	}
}

func TestSampleColor_OutOfRangeComponents(t *testing.T) {
	img, err := NewImage("raw", colorspace.MustLookup(colorspace.CMY), 2, 2)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	if err := img.Set(1, 1, colorspace.NewPixel(1.5, 0, 0)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.InRange {
		t.Error("InRange should be false for cyan 1.5")
	}
	// display clamps the red channel to 0
	if result.RGB != (RGBColor{R: 0, G: 255, B: 255}) {
		t.Errorf("display RGB: got %+v", result.RGB)
	}
}

func TestSampleColor_Bounds(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name    string
		x, y    int
		wantErr bool
	}{
		{"top-left corner", 0, 0, false},
		{"top-right corner", 99, 0, false},
		{"bottom-left corner", 0, 99, false},
		{"bottom-right corner", 99, 99, false},
		{"negative x", -1, 50, true},
		{"negative y", 50, -1, true},
		{"x at width", 100, 50, true},
		{"y at height", 50, 100, true},
		{"both past the edge", 100, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("SampleColor(%d,%d) failed: %v", tt.x, tt.y, err)
				}
				return
			}
			if !errors.Is(err, colorspace.ErrIndexOutOfRange) {
				t.Errorf("SampleColor(%d,%d): got %v, want ErrIndexOutOfRange", tt.x, tt.y, err)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := patternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
	}

	expectedHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, sample := range result.Samples {
		if sample.Color.Hex != expectedHex[i] {
			t.Errorf("sample %d (%s) hex: got %s, want %s",
				i, sample.Label, sample.Color.Hex, expectedHex[i])
		}
	}
}

func TestSampleColorsMulti_EmptyPoints(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := SampleColorsMulti(img, []LabeledPoint{})
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 0 {
		t.Errorf("expected 0 samples, got %d", len(result.Samples))
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{255, 0, 0, 255})

	points := []LabeledPoint{
		{X: 50, Y: 50, Label: "valid"},
		{X: 200, Y: 50, Label: "invalid"},
	}

	_, err := SampleColorsMulti(img, points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestRGBColor_Hex(t *testing.T) {
	tests := []struct {
		c    RGBColor
		want string
	}{
		{RGBColor{255, 0, 0}, "#FF0000"},
		{RGBColor{0, 0, 0}, "#000000"},
		{RGBColor{18, 52, 86}, "#123456"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDominantColors(t *testing.T) {
	// Create an image with mostly red, some green
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				src.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				src.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	result, err := DominantColors(FromImage(src, "png"), 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	if result.Colors[0].Percentage != 80 {
		t.Errorf("dominant color percentage: got %f, want 80", result.Colors[0].Percentage)
	}
	// 255 quantizes to 240
	if result.Colors[0].Hex != "#F00000" {
		t.Errorf("dominant color: got %s, want #F00000", result.Colors[0].Hex)
	}
}

func TestDominantColors_ComponentsInSpace(t *testing.T) {
	img := convertImage(t, uniformImage(20, 20, color.RGBA{0, 0, 255, 255}), colorspace.HSV)

	result, err := DominantColors(img, 3, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if result.Space != "HSV" {
		t.Errorf("Space: got %s, want HSV", result.Space)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color, got %d", len(result.Colors))
	}

	// quantized blue (0,0,240) is hue 240, full saturation
	c := result.Colors[0].Components
	if math.Abs(float64(c[0])-240) > 1e-3 || math.Abs(float64(c[1])-1) > 1e-6 {
		t.Errorf("HSV components: got %v", c)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	img := patternImage(100, 100)

	region := &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}
	result, err := DominantColors(img, 5, region)
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}

	if len(result.Colors) == 0 {
		t.Fatal("expected at least one color")
	}
	if result.Colors[0].Percentage < 90 {
		t.Errorf("expected red to dominate in top-left region, got %f%%", result.Colors[0].Percentage)
	}
}

func TestDominantColors_InvalidRegion(t *testing.T) {
	img := patternImage(100, 100)

	tests := []struct {
		name   string
		region Region
	}{
		{"outside", Region{X1: 90, Y1: 90, X2: 120, Y2: 120}},
		{"empty", Region{X1: 10, Y1: 10, X2: 10, Y2: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DominantColors(img, 5, &tt.region); err == nil {
				t.Error("DominantColors should fail for an invalid region")
			}
		})
	}
}

func TestDominantColors_SingleColor(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{128, 128, 128, 255})

	result, err := DominantColors(img, 3, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Errorf("expected 1 color for uniform image, got %d", len(result.Colors))
	}

	if result.Colors[0].Percentage != 100 {
		t.Errorf("expected 100%% for single color, got %f%%", result.Colors[0].Percentage)
	}
}
