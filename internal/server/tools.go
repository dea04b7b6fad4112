package server

import (
	"github.com/ironsheep/colorspace-mcp/internal/colorspace"
	"github.com/ironsheep/colorspace-mcp/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// schema is a JSON Schema fragment.
type schema = map[string]interface{}

// objectSchema builds a tool's input schema.
func objectSchema(properties schema, required ...string) schema {
	s := schema{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// imageSchema is objectSchema for tools that read pixels: it adds "path"
// and "space" to properties.
func imageSchema(properties schema, required ...string) schema {
	properties["path"] = pathProperty()
	properties["space"] = spaceProperty()
	return objectSchema(properties, append([]string{"path"}, required...)...)
}

func pathProperty() schema {
	return schema{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// spaceProperty lists every declared color space. Spaces without a
// conversion are accepted by the schema and rejected by the tool.
func spaceProperty() schema {
	names := make([]string, 0, len(colorspace.Kinds()))
	for _, k := range colorspace.Kinds() {
		names = append(names, k.String())
	}
	return schema{
		"type":        "string",
		"enum":        names,
		"description": "Color space to work in (default RGB). Names are case-insensitive.",
		"default":     "RGB",
	}
}

func scaleProperty() schema {
	return schema{
		"type":        "number",
		"description": "Resize factor for the returned PNG (2.0 doubles it). Default 1.0",
		"default":     1.0,
	}
}

func intProperty(description string) schema {
	return schema{"type": "integer", "description": description}
}

func componentProperty(description string) schema {
	return schema{
		"type":        "integer",
		"minimum":     1,
		"maximum":     3,
		"description": description,
	}
}

func regionProperty(description string) schema {
	corner := schema{"type": "integer"}
	return schema{
		"type": "object",
		"properties": schema{
			"x1": corner, "y1": corner, "x2": corner, "y2": corner,
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, decoder format and the color space of the loaded pixels (always RGB).",
			InputSchema: objectSchema(schema{"path": pathProperty()}, "path"),
		},
		{
			Name:        "image_dimensions",
			Description: "Return the width and height of an image file in pixels.",
			InputSchema: objectSchema(schema{"path": pathProperty()}, "path"),
		},
		{
			Name:        "image_color_spaces",
			Description: "List the known color spaces with their component names and whether conversions are implemented.",
			InputSchema: objectSchema(schema{}),
		},

		// Conversion Operations
		{
			Name:        "image_convert",
			Description: "Convert an image to a color space and report per-component minimum, maximum and whether all values lie in the space's valid range.",
			InputSchema: imageSchema(schema{}, "space"),
		},
		{
			Name:        "image_extract_component",
			Description: "Extract one component (1, 2 or 3) of an image in a color space as a grayscale base64-encoded PNG, e.g. the hue plane of HSL.",
			InputSchema: imageSchema(schema{
				"component": componentProperty("Component number: 1, 2 or 3"),
				"scale":     scaleProperty(),
			}, "space", "component"),
		},
		{
			Name:        "image_render",
			Description: "Render an image after converting it to a color space and back to RGB, as base64-encoded PNG.",
			InputSchema: imageSchema(schema{"scale": scaleProperty()}),
		},
		{
			Name:        "image_save",
			Description: "Write an image to disk after converting it to a color space. If component is given, the grayscale component image is written instead. The format follows the output extension (.png, .jpg, .jpeg, .bmp).",
			InputSchema: imageSchema(schema{
				"output_path": schema{
					"type":        "string",
					"description": "Absolute path of the file to write",
				},
				"component": componentProperty("Optional component number to write as grayscale"),
			}, "output_path"),
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image converted to a color space and return it as base64-encoded PNG.",
			InputSchema: imageSchema(schema{
				"x1":    intProperty("Left edge, inclusive"),
				"y1":    intProperty("Top edge, inclusive"),
				"x2":    intProperty("Right edge, exclusive"),
				"y2":    intProperty("Bottom edge, exclusive"),
				"scale": scaleProperty(),
			}, "x1", "y1", "x2", "y2"),
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named part of the image (a quadrant, a half or the center) from an image converted to a color space.",
			InputSchema: imageSchema(schema{
				"region": schema{
					"type":        "string",
					"enum":        imaging.NamedRegions(),
					"description": "Which part of the image to return",
				},
				"scale": scaleProperty(),
			}, "region"),
		},
		{
			Name:        "image_grid_overlay",
			Description: "Render an image converted to a color space with a labeled coordinate grid on top, for locating pixels to sample.",
			InputSchema: imageSchema(schema{
				"grid_spacing": schema{
					"type":        "integer",
					"description": "Pixels between grid lines",
					"default":     50,
				},
				"show_coordinates": schema{
					"type":        "boolean",
					"description": "Label each grid crossing with its x,y",
					"default":     true,
				},
				"grid_color": schema{
					"type":        "string",
					"description": "Line color as #RRGGBB or #RRGGBBAA",
					"default":     "#FF000080",
				},
			}),
		},

		// Color Operations
		{
			Name:        "image_sample_pixel",
			Description: "Get the component values of a pixel in a color space, with their names, the displayed RGB color and whether the values are in range.",
			InputSchema: imageSchema(schema{
				"x": intProperty("Column, 0 at the left edge"),
				"y": intProperty("Row, 0 at the top edge"),
			}, "x", "y"),
		},
		{
			Name:        "image_sample_pixels_multi",
			Description: "Get pixel component values at multiple coordinates in a single call.",
			InputSchema: imageSchema(schema{
				"points": schema{
					"type": "array",
					"items": objectSchema(schema{
						"x":     schema{"type": "integer"},
						"y":     schema{"type": "integer"},
						"label": schema{"type": "string", "description": "Echoed back with the sample"},
					}, "x", "y"),
					"description": "Points to sample, answered in the same order",
				},
			}, "points"),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the most frequent quantized colors, each also expressed in the requested color space.",
			InputSchema: imageSchema(schema{
				"count": schema{
					"type":        "integer",
					"description": "How many colors to return",
					"default":     5,
				},
				"region": regionProperty("Area to analyze. The whole image when omitted."),
			}),
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions of an image by perceptual color distance and report the mean components of each region in a color space.",
			InputSchema: imageSchema(schema{
				"region1": regionProperty("First region"),
				"region2": regionProperty("Second region"),
			}, "region1", "region2"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
