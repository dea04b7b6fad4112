package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// SaveResult describes a written image file.
type SaveResult struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// jpegQuality is used for ".jpg" and ".jpeg" output.
const jpegQuality = 95

// Save renders img (see Image.Bitmap) and writes it to path. The output
// format follows the file extension: ".png", ".jpg"/".jpeg" or ".bmp".
func Save(img *Image, path string) (*SaveResult, error) {
	format, encoder, err := encoderFor(path)
	if err != nil {
		return nil, err
	}

	if err := imgio.Save(path, img.Bitmap(), encoder); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &SaveResult{
		Path:          path,
		Format:        format,
		Width:         img.Width(),
		Height:        img.Height(),
		FileSizeBytes: stat.Size(),
	}, nil
}

func encoderFor(path string) (string, imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return "jpeg", imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return "bmp", imgio.BMPEncoder(), nil
	default:
		return "", nil, fmt.Errorf("unsupported output format %q", ext)
	}
}
