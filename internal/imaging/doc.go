// Package imaging holds float images bound to a color space and the thin
// operations the MCP server performs on them.
//
// An Image pairs a colorspace.Grid with the colorspace.Space that owns its
// components and an opaque magic tag naming the source format. All color
// math is delegated to package colorspace; this package loads files,
// converts between spaces, extracts components and renders 8-bit bitmaps.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Images returned by the
// cache are shared and must not be modified with Set; Convert, Component and
// Pixels return independent copies.
//
// # Rendering
//
// Bitmap converts to RGB and then rounds and clamps each channel to [0,255].
// That clamping belongs to rendering only; Stats and SampleColor report the
// raw float components and whether they pass the space's Check.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds (wrapping colorspace.ErrIndexOutOfRange)
//   - Unsupported target spaces (wrapping colorspace.ErrUnsupported)
//   - Components that cannot be scaled (wrapping colorspace.ErrNegativeComponent)
//   - File I/O and encoding errors
package imaging
