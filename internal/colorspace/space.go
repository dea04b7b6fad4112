package colorspace

import (
	"fmt"
	"strings"
)

// Kind identifies a color space.
type Kind int

// The closed set of color spaces known to the engine. YCbCr601, YCbCr709
// and YCoCg are declared for labeling and dispatch but have no conversion
// implementation; Lookup returns ErrUnsupported for them.
const (
	RGB Kind = iota
	CMY
	HSL
	HSV
	YCbCr601
	YCbCr709
	YCoCg
)

var kindNames = [...]string{
	RGB:      "RGB",
	CMY:      "CMY",
	HSL:      "HSL",
	HSV:      "HSV",
	YCbCr601: "YCbCr601",
	YCbCr709: "YCbCr709",
	YCoCg:    "YCoCg",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every declared color space, implemented or not.
func Kinds() []Kind {
	return []Kind{RGB, CMY, HSL, HSV, YCbCr601, YCbCr709, YCoCg}
}

// ParseKind maps a color space name to its Kind. Matching ignores case, so
// "hsl" and "HSL" are equivalent.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown color space: %q", name)
}

// Space is the conversion contract every color space implements.
//
// Grid methods never modify their argument and always return a grid of the
// same dimensions. Implementations are stateless and safe for concurrent use.
type Space interface {
	// Kind returns the identifier of this space.
	Kind() Kind

	// ComponentNames returns display names for C1, C2 and C3.
	ComponentNames() [3]string

	// ToRGBPixel converts one pixel from this space to RGB in [0,255].
	ToRGBPixel(p Pixel) Pixel

	// FromRGBPixel converts one RGB pixel in [0,255] to this space.
	FromRGBPixel(p Pixel) Pixel

	// ToRGB converts every pixel of g to RGB.
	ToRGB(g *Grid) *Grid

	// FromRGB converts every pixel of an RGB grid to this space.
	FromRGB(g *Grid) *Grid

	// ScaleFrom256 maps components expressed in device units into this
	// space's native range. It fails with a *ScaleError if any result is
	// negative.
	ScaleFrom256(g *Grid) (*Grid, error)

	// ScaleTo256 is the inverse of ScaleFrom256.
	ScaleTo256(g *Grid) (*Grid, error)

	// Check reports whether every component of every pixel lies in the
	// closed interval declared by this space.
	Check(g *Grid) bool
}

var spaces = map[Kind]Space{
	RGB: rgbSpace{},
	CMY: cmySpace{},
	HSL: hslSpace{},
	HSV: hsvSpace{},
}

// Lookup returns the strategy for k.
func Lookup(k Kind) (Space, error) {
	if s, ok := spaces[k]; ok {
		return s, nil
	}
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown color space %v", k)
	}
	return nil, fmt.Errorf("%v: %w", k, ErrUnsupported)
}

// MustLookup is like Lookup but panics on error. It is meant for the
// implemented spaces, which always succeed.
func MustLookup(k Kind) Space {
	s, err := Lookup(k)
	if err != nil {
		panic(err)
	}
	return s
}

// Implemented reports whether k has a conversion implementation.
func Implemented(k Kind) bool {
	_, ok := spaces[k]
	return ok
}

// ComponentNames returns the display names of k's components. Unimplemented
// spaces still carry names.
func ComponentNames(k Kind) [3]string {
	if s, ok := spaces[k]; ok {
		return s.ComponentNames()
	}
	switch k {
	case YCbCr601, YCbCr709:
		return [3]string{"Luma", "Blue-difference chroma", "Red-difference chroma"}
	case YCoCg:
		return [3]string{"Luma", "Chrominance orange", "Chrominance green"}
	}
	return [3]string{}
}
