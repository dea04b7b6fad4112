// Package colorspace converts pixel grids between RGB and alternative color
// models.
//
// A Grid holds float32 pixel triples whose meaning depends on the Space that
// owns them. Every Space converts to and from RGB; conversion between two
// non-RGB spaces goes through RGB as a hub (see Convert).
//
// # Color Spaces
//
//   - RGB: Red, Green, Blue in [0,255]
//   - CMY: Cyan, Magenta, Yellow in [0,1]
//   - HSL: Hue in [0,360], Saturation and Lightness in [0,1]
//   - HSV: Hue in [0,360], Saturation and Value in [0,1]
//
// YCbCr601, YCbCr709 and YCoCg are declared Kinds without an implementation.
//
// # Scaling and Validation
//
// ScaleFrom256 maps components stored in device units ([0,255] per channel)
// into a space's native range and ScaleTo256 maps them back. Both reject
// grids that would produce a negative component and never return a partial
// result. Check is a predicate: it reports whether a grid lies in the
// space's declared domain and never clamps.
//
// # Thread Safety
//
// Spaces are stateless values and may be shared freely. Grid operations do
// not modify their input and split work across goroutines by rows. A Grid
// itself must not be mutated with Set while another goroutine reads it.
package colorspace
