package colorspace

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
)

// Grid is a width x height array of pixels stored row by row in a single
// contiguous buffer. Pixel (x, y) lives at index y*Stride + x.
//
// A Grid is not safe for concurrent mutation. Operations in this package
// never modify their input grid; they return a new one.
type Grid struct {
	width  int
	height int
	stride int
	pix    []Pixel
}

// NewGrid allocates a zeroed grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]Pixel, width*height),
	}, nil
}

// GridFromPixels builds a grid from row-major pixel data. The slice is
// copied, so later changes to pix do not affect the grid.
func GridFromPixels(width, height int, pix []Pixel) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("got %d pixels for a %dx%d grid", len(pix), width, height)
	}
	copy(g.pix, pix)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Stride returns the distance in pixels between vertically adjacent pixels.
func (g *Grid) Stride() int { return g.stride }

// Len returns the total number of pixels.
func (g *Grid) Len() int { return g.width * g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the pixel at (x, y). Coordinates outside the grid yield an
// *IndexError.
func (g *Grid) At(x, y int) (Pixel, error) {
	if !g.inBounds(x, y) {
		return Pixel{}, &IndexError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.pix[y*g.stride+x], nil
}

// Set stores p at (x, y). Coordinates outside the grid yield an *IndexError
// and leave the grid unchanged.
func (g *Grid) Set(x, y int, p Pixel) error {
	if !g.inBounds(x, y) {
		return &IndexError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	g.pix[y*g.stride+x] = p
	return nil
}

// Pixels returns a row-major copy of the grid contents.
func (g *Grid) Pixels() []Pixel {
	out := make([]Pixel, 0, g.Len())
	for y := 0; y < g.height; y++ {
		row := g.pix[y*g.stride : y*g.stride+g.width]
		out = append(out, row...)
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		stride: g.width,
		pix:    g.Pixels(),
	}
}

// empty returns a zeroed grid with the same dimensions as g.
func (g *Grid) empty() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		stride: g.width,
		pix:    make([]Pixel, g.width*g.height),
	}
}

// mapPixels applies fn to every pixel of g and returns the results as a new
// grid. Rows are split across workers; each worker writes only its own rows.
func mapPixels(g *Grid, fn func(Pixel) Pixel) *Grid {
	out := g.empty()
	parallel.Line(g.height, func(start, end int) {
		for y := start; y < end; y++ {
			src := g.pix[y*g.stride : y*g.stride+g.width]
			dst := out.pix[y*out.stride : y*out.stride+out.width]
			for x, p := range src {
				dst[x] = fn(p)
			}
		}
	})
	return out
}

// mapPixelsErr is like mapPixels but fn may reject a pixel. If any pixel is
// rejected no grid is returned; the reported error is the one for the
// lowest row-major index so the result does not depend on scheduling.
func mapPixelsErr(g *Grid, fn func(Pixel) (Pixel, bool)) (*Grid, error) {
	out := g.empty()

	var (
		mu       sync.Mutex
		firstIdx = -1
		firstPix Pixel
	)

	parallel.Line(g.height, func(start, end int) {
		for y := start; y < end; y++ {
			src := g.pix[y*g.stride : y*g.stride+g.width]
			dst := out.pix[y*out.stride : y*out.stride+out.width]
			for x, p := range src {
				q, ok := fn(p)
				if !ok {
					idx := y*g.width + x
					mu.Lock()
					if firstIdx < 0 || idx < firstIdx {
						firstIdx = idx
						firstPix = q
					}
					mu.Unlock()
					// rows further down can only have larger indices
					return
				}
				dst[x] = q
			}
		}
	})

	if firstIdx >= 0 {
		return nil, &ScaleError{X: firstIdx % g.width, Y: firstIdx / g.width, Pixel: firstPix}
	}
	return out, nil
}

// allPixels reports whether pred holds for every pixel of g. Workers stop
// scanning once any of them has found a counterexample.
func allPixels(g *Grid, pred func(Pixel) bool) bool {
	var failed atomic.Bool
	parallel.Line(g.height, func(start, end int) {
		for y := start; y < end && !failed.Load(); y++ {
			for _, p := range g.pix[y*g.stride : y*g.stride+g.width] {
				if !pred(p) {
					failed.Store(true)
					return
				}
			}
		}
	})
	return !failed.Load()
}
