package colorspace

// Convert re-expresses g, whose pixels are in space from, in space to. The
// conversion is always routed through RGB: to.FromRGB(from.ToRGB(g)).
func Convert(g *Grid, from, to Space) *Grid {
	return to.FromRGB(from.ToRGB(g))
}

// ConvertKind is Convert for space identifiers. It fails if either space is
// unknown or unimplemented.
func ConvertKind(g *Grid, from, to Kind) (*Grid, error) {
	src, err := Lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := Lookup(to)
	if err != nil {
		return nil, err
	}
	return Convert(g, src, dst), nil
}

// ConvertPixel converts a single pixel from one space to another via RGB.
func ConvertPixel(p Pixel, from, to Space) Pixel {
	return to.FromRGBPixel(from.ToRGBPixel(p))
}
