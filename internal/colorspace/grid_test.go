package colorspace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestGrid builds a grid from row-major pixels, failing the test on error.
func newTestGrid(t *testing.T, width, height int, pix ...Pixel) *Grid {
	t.Helper()
	g, err := GridFromPixels(width, height, pix)
	if err != nil {
		t.Fatalf("GridFromPixels failed: %v", err)
	}
	return g
}

// uniformGrid returns a width x height grid where every pixel is p.
func uniformGrid(t *testing.T, width, height int, p Pixel) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := g.Set(x, y, p); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", x, y, err)
			}
		}
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", g.Width(), g.Height())
	}
	if g.Stride() != 4 {
		t.Errorf("Stride: got %d, want 4", g.Stride())
	}
	for _, p := range g.Pixels() {
		if p != (Pixel{}) {
			t.Fatalf("new grid not zeroed: %+v", p)
		}
	}
}

func TestNewGrid_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"negative width", -1, 3},
		{"negative height", 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.w, tt.h); err == nil {
				t.Error("NewGrid should fail for negative dimensions")
			}
		})
	}
}

func TestGridFromPixels_LengthMismatch(t *testing.T) {
	_, err := GridFromPixels(2, 2, []Pixel{{}, {}, {}})
	if err == nil {
		t.Error("GridFromPixels should fail when the pixel count does not match")
	}
}

func TestGrid_AtSet(t *testing.T) {
	g := newTestGrid(t, 2, 2,
		NewPixel(1, 2, 3), NewPixel(4, 5, 6),
		NewPixel(7, 8, 9), NewPixel(10, 11, 12),
	)

	p, err := g.At(1, 1)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if p != NewPixel(10, 11, 12) {
		t.Errorf("At(1,1): got %+v, want (10,11,12)", p)
	}

	if err := g.Set(0, 1, NewPixel(0.5, 0.5, 0.5)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	p, _ = g.At(0, 1)
	if p != NewPixel(0.5, 0.5, 0.5) {
		t.Errorf("At(0,1) after Set: got %+v", p)
	}
}

func TestGrid_OutOfRange(t *testing.T) {
	g := uniformGrid(t, 10, 5, NewPixel(1, 1, 1))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 2},
		{"negative y", 2, -1},
		{"x equals width", 10, 2},
		{"y equals height", 2, 5},
		{"both too large", 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.At(tt.x, tt.y)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("At: got %v, want ErrIndexOutOfRange", err)
			}

			err = g.Set(tt.x, tt.y, NewPixel(9, 9, 9))
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Set: got %v, want ErrIndexOutOfRange", err)
			}

			var ie *IndexError
			if !errors.As(err, &ie) {
				t.Fatalf("Set error is not *IndexError: %T", err)
			}
			if ie.X != tt.x || ie.Y != tt.y || ie.Width != 10 || ie.Height != 5 {
				t.Errorf("IndexError fields: got %+v", ie)
			}
		})
	}

	// a failed Set must not touch the grid
	for _, p := range g.Pixels() {
		if p != NewPixel(1, 1, 1) {
			t.Fatalf("grid modified by out-of-range Set: %+v", p)
		}
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := uniformGrid(t, 3, 3, NewPixel(1, 2, 3))
	c := g.Clone()

	if err := c.Set(1, 1, NewPixel(0, 0, 0)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	p, _ := g.At(1, 1)
	if p != NewPixel(1, 2, 3) {
		t.Errorf("original changed through clone: %+v", p)
	}
}

func TestGrid_PixelsIsCopy(t *testing.T) {
	g := uniformGrid(t, 2, 2, NewPixel(1, 2, 3))
	pix := g.Pixels()
	pix[0] = NewPixel(7, 7, 7)

	p, _ := g.At(0, 0)
	if p != NewPixel(1, 2, 3) {
		t.Errorf("grid changed through Pixels slice: %+v", p)
	}
}

func TestMapPixels_PreservesLayout(t *testing.T) {
	g, _ := NewGrid(37, 23)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			_ = g.Set(x, y, NewPixel(float32(x), float32(y), 0))
		}
	}

	out := mapPixels(g, func(p Pixel) Pixel {
		return NewPixel(p.C1, p.C2, p.C1+p.C2)
	})

	want := make([]Pixel, 0, g.Len())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want = append(want, NewPixel(float32(x), float32(y), float32(x+y)))
		}
	}
	if diff := cmp.Diff(want, out.Pixels()); diff != "" {
		t.Errorf("mapPixels result mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPixelsErr_ReportsFirstFailure(t *testing.T) {
	g := uniformGrid(t, 64, 64, NewPixel(1, 1, 1))
	_ = g.Set(5, 50, NewPixel(-1, 1, 1))
	_ = g.Set(10, 40, NewPixel(1, -1, 1))
	_ = g.Set(63, 63, NewPixel(1, 1, -1))

	out, err := mapPixelsErr(g, func(p Pixel) (Pixel, bool) {
		return p, nonNegative(p)
	})
	if out != nil {
		t.Error("mapPixelsErr returned a grid together with an error")
	}

	var se *ScaleError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ScaleError, got %v", err)
	}
	if se.X != 10 || se.Y != 40 {
		t.Errorf("first failure: got (%d,%d), want (10,40)", se.X, se.Y)
	}
	if !errors.Is(err, ErrNegativeComponent) {
		t.Error("ScaleError should unwrap to ErrNegativeComponent")
	}
}

func TestAllPixels_EmptyGrid(t *testing.T) {
	g, _ := NewGrid(0, 0)
	if !allPixels(g, func(Pixel) bool { return false }) {
		t.Error("allPixels should hold vacuously on an empty grid")
	}
}
