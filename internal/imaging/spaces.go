package imaging

import "github.com/ironsheep/colorspace-mcp/internal/colorspace"

// ColorSpaceInfo describes one known color space.
type ColorSpaceInfo struct {
	Name           string    `json:"name"`
	ComponentNames [3]string `json:"component_names"`
	Implemented    bool      `json:"implemented"` // false if conversions fail with ErrUnsupported
}

// ColorSpacesResult lists every known color space in declaration order.
type ColorSpacesResult struct {
	Spaces []ColorSpaceInfo `json:"spaces"`
}

// ListColorSpaces returns all color spaces, including those that are
// declared but cannot be converted to yet.
func ListColorSpaces() *ColorSpacesResult {
	kinds := colorspace.Kinds()
	spaces := make([]ColorSpaceInfo, 0, len(kinds))
	for _, k := range kinds {
		spaces = append(spaces, ColorSpaceInfo{
			Name:           k.String(),
			ComponentNames: colorspace.ComponentNames(k),
			Implemented:    colorspace.Implemented(k),
		})
	}
	return &ColorSpacesResult{Spaces: spaces}
}

// LoadAs loads path through cache and converts it to the named color space.
// An empty name keeps the image in RGB. The result is always a copy, so
// callers may modify it without touching the cache. Unknown names fail;
// declared but unimplemented spaces fail with an error wrapping
// colorspace.ErrUnsupported.
func LoadAs(cache *ImageCache, path, space string) (*Image, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	k := img.Space().Kind()
	if space != "" {
		if k, err = colorspace.ParseKind(space); err != nil {
			return nil, err
		}
	}
	return img.Convert(k)
}
