package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// RenderResult contains a rendered image encoded as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Space       string `json:"space"`
	Format      string `json:"format"` // magic tag of the source image
}

// Render displays the image as PNG. Pixels are converted to RGB and
// quantized to 8 bits per channel (see Image.Bitmap), then optionally
// resized by scale.
func Render(img *Image, scale float64) (*RenderResult, error) {
	return encodeRender(img, img.Bitmap(), scale)
}

// Crop extracts a rectangular region from an image and renders it as PNG.
func Crop(img *Image, x1, y1, x2, y2 int, scale float64) (*RenderResult, error) {
	if x1 < 0 || y1 < 0 || x2 > img.Width() || y2 > img.Height() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, img.Width(), img.Height())
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img.Bitmap(), image.Rect(x1, y1, x2, y2))
	return encodeRender(img, cropped, scale)
}

// namedRegions maps region names to their bounds within a w x h image, in
// the order they are advertised. Odd sizes put the extra row or column in
// the right or bottom part.
var namedRegions = []struct {
	name   string
	bounds func(w, h int) image.Rectangle
}{
	{"top-left", func(w, h int) image.Rectangle { return image.Rect(0, 0, w/2, h/2) }},
	{"top-right", func(w, h int) image.Rectangle { return image.Rect(w/2, 0, w, h/2) }},
	{"bottom-left", func(w, h int) image.Rectangle { return image.Rect(0, h/2, w/2, h) }},
	{"bottom-right", func(w, h int) image.Rectangle { return image.Rect(w/2, h/2, w, h) }},
	{"top-half", func(w, h int) image.Rectangle { return image.Rect(0, 0, w, h/2) }},
	{"bottom-half", func(w, h int) image.Rectangle { return image.Rect(0, h/2, w, h) }},
	{"left-half", func(w, h int) image.Rectangle { return image.Rect(0, 0, w/2, h) }},
	{"right-half", func(w, h int) image.Rectangle { return image.Rect(w/2, 0, w, h) }},
	// the middle 50% in each direction
	{"center", func(w, h int) image.Rectangle { return image.Rect(w/4, h/4, w-w/4, h-h/4) }},
}

// NamedRegions lists the region names accepted by CropQuadrant.
func NamedRegions() []string {
	names := make([]string, len(namedRegions))
	for i, r := range namedRegions {
		names[i] = r.name
	}
	return names
}

// CropQuadrant crops one of the NamedRegions and renders it like Crop.
func CropQuadrant(img *Image, region string, scale float64) (*RenderResult, error) {
	for _, r := range namedRegions {
		if r.name == region {
			b := r.bounds(img.Width(), img.Height())
			return Crop(img, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, scale)
		}
	}
	return nil, fmt.Errorf("unknown region: %s", region)
}

func encodeRender(img *Image, bitmap image.Image, scale float64) (*RenderResult, error) {
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(bitmap.Bounds().Dx()) * scale)
		newHeight := int(float64(bitmap.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g leaves no pixels", scale)
		}
		bitmap = imaging.Resize(bitmap, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, bitmap, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderResult{
		Width:       bitmap.Bounds().Dx(),
		Height:      bitmap.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Space:       img.Space().Kind().String(),
		Format:      img.Magic(),
	}, nil
}
