// Package server implements the MCP (Model Context Protocol) server for color
// space tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color space
// engine through the MCP protocol, so that MCP clients can inspect images
// in RGB, CMY, HSL or HSV.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_color_spaces: List color spaces and their component names
//
// Conversion Operations:
//   - image_convert: Per-component range statistics in a color space
//   - image_extract_component: One component as a grayscale PNG
//   - image_render: PNG of the image after a round trip through a space
//   - image_save: Write the converted image or one component to disk
//
// Region Operations:
//   - image_crop: Extract rectangular region
//   - image_crop_quadrant: Extract named region (top-left, center, etc.)
//   - image_grid_overlay: Add coordinate grid
//
// Color Operations:
//   - image_sample_pixel: Component values at a pixel
//   - image_sample_pixels_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//   - image_compare_regions: Compare two regions
//
// Every tool that reads pixels accepts an optional "space" argument (default
// RGB). Images are loaded as RGB and converted on each call. Declared spaces
// without a conversion (YCbCr601, YCbCr709, YCoCg) are listed by
// image_color_spaces but fail when requested.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded RGB images keyed by path.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// Logs go to the standard logger, which main points at stderr. Setting
// COLORSPACE_MCP_LOG_LEVEL=debug adds one line per request and per tool call.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
