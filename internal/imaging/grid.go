package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GridOverlayResult contains the rendered image with grid overlay
type GridOverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	GridSpacing int    `json:"grid_spacing"`
	Space       string `json:"space"`
}

var (
	defaultGridColor = color.NRGBA{R: 255, A: 128}
	labelForeground  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelBackground  = color.NRGBA{A: 180}
)

// GridOverlay renders the image (see Image.Bitmap) and composites a
// coordinate grid over it. An unparsable gridColorHex falls back to
// semi-transparent red.
func GridOverlay(img *Image, gridSpacing int, showCoordinates bool, gridColorHex string) (*GridOverlayResult, error) {
	if gridSpacing <= 0 {
		return nil, fmt.Errorf("grid spacing must be positive, got %d", gridSpacing)
	}

	canvas := img.Bitmap()
	bounds := canvas.Bounds()

	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = defaultGridColor
	}

	// one mask for all lines so crossings are blended once
	mask := image.NewAlpha(bounds)
	for x := gridSpacing; x < bounds.Dx(); x += gridSpacing {
		for y := 0; y < bounds.Dy(); y++ {
			mask.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	for y := gridSpacing; y < bounds.Dy(); y += gridSpacing {
		for x := 0; x < bounds.Dx(); x++ {
			mask.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	draw.DrawMask(canvas, bounds, image.NewUniform(gridColor), image.Point{}, mask, bounds.Min, draw.Over)

	if showCoordinates {
		for y := gridSpacing; y < bounds.Dy(); y += gridSpacing {
			for x := gridSpacing; x < bounds.Dx(); x += gridSpacing {
				drawLabel(canvas, x+2, y+2, fmt.Sprintf("%d,%d", x, y), labelForeground, labelBackground)
			}
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &GridOverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		GridSpacing: gridSpacing,
		Space:       img.Space().Kind().String(),
	}, nil
}

// parseHexColor accepts "RRGGBB" or "RRGGBBAA", with or without a leading
// '#'. The alpha byte is straight (not premultiplied).
func parseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	alpha := uint64(255)
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = a
		hex = hex[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

// Glyphs are 3 pixels wide and 5 tall. Each row keeps its leftmost pixel
// in bit 2.
var glyphs = map[rune][5]uint8{
	'0': {7, 5, 5, 5, 7},
	'1': {2, 6, 2, 2, 7},
	'2': {7, 1, 7, 4, 7},
	'3': {7, 1, 7, 1, 7},
	'4': {5, 5, 7, 1, 1},
	'5': {7, 4, 7, 1, 7},
	'6': {7, 4, 7, 5, 7},
	'7': {7, 1, 1, 1, 1},
	'8': {7, 5, 7, 5, 7},
	'9': {7, 5, 7, 1, 7},
	',': {0, 0, 0, 2, 2},
}

const (
	glyphAdvance = 4
	glyphHeight  = 5
)

// drawLabel composites bg behind text with a one pixel margin, then sets
// the glyph pixels to fg. Runes without a glyph leave a gap. Anything
// outside img is clipped.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.Color) {
	box := image.Rect(x-1, y-1, x+len(text)*glyphAdvance, y+glyphHeight+2)
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Over)

	bounds := img.Bounds()
	for i, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		cx := x + i*glyphAdvance
		for row, bits := range glyph {
			for col := 0; col < 3; col++ {
				if bits&(4>>col) == 0 {
					continue
				}
				if p := image.Pt(cx+col, y+row); p.In(bounds) {
					img.Set(p.X, p.Y, fg)
				}
			}
		}
	}
}
