package colorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a pixel coordinate lies outside a grid.
	ErrIndexOutOfRange = errors.New("pixel index out of range")

	// ErrNegativeComponent is returned by ScaleFrom256 and ScaleTo256 when a
	// scaled component would be negative. The input was already outside the
	// expected domain.
	ErrNegativeComponent = errors.New("negative component found")

	// ErrUnsupported is returned for color spaces that are declared but have
	// no conversion implementation.
	ErrUnsupported = errors.New("color space not supported")
)

// IndexError describes an out-of-range pixel access.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("pixel (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// ScaleError reports the first pixel (in row-major order) whose scaled value
// had a negative component.
type ScaleError struct {
	X, Y  int
	Pixel Pixel // the offending pixel after scaling
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("negative component found at (%d,%d): (%g, %g, %g)",
		e.X, e.Y, e.Pixel.C1, e.Pixel.C2, e.Pixel.C3)
}

func (e *ScaleError) Unwrap() error { return ErrNegativeComponent }
