package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/colorspace-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed after %v: %v", params.Name, time.Since(start), err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.debugf("tool %s done in %v", params.Name, time.Since(start))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the image from cache and converts it to the requested space
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_color_spaces":
		return imaging.ListColorSpaces(), nil

	// Conversion Operations
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_extract_component":
		return s.handleImageExtractComponent(args)
	case "image_render":
		return s.handleImageRender(args)
	case "image_save":
		return s.handleImageSave(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)
	case "image_grid_overlay":
		return s.handleImageGridOverlay(args)

	// Color Operations
	case "image_sample_pixel":
		return s.handleImageSamplePixel(args)
	case "image_sample_pixels_multi":
		return s.handleImageSamplePixelsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into a fresh T.
func decodeArgs[T any](args json.RawMessage) (T, error) {
	var a T
	if err := json.Unmarshal(args, &a); err != nil {
		return a, fmt.Errorf("invalid arguments: %w", err)
	}
	return a, nil
}

// imageArgs are shared by every tool that reads pixels. An empty Space
// means RGB.
type imageArgs struct {
	Path  string `json:"path"`
	Space string `json:"space"`
}

func (s *Server) load(a imageArgs) (*imaging.Image, error) {
	return imaging.LoadAs(s.cache, a.Path, a.Space)
}

// regionArgs is the JSON form of imaging.Region.
type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r regionArgs) region() imaging.Region {
	return imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

// defaultScale maps an omitted scale to 1.
func defaultScale(scale float64) float64 {
	if scale == 0 {
		return 1.0
	}
	return scale
}

// === Basic Image Information Handlers ===

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[imageArgs](args)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[imageArgs](args)
	if err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Conversion Operation Handlers ===

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[imageArgs](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a)
	if err != nil {
		return nil, err
	}
	stats := img.Stats()
	return &stats, nil
}

type renderArgs struct {
	imageArgs
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageExtractComponent(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		renderArgs
		Component int `json:"component"`
	}](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	comp, err := img.Component(a.Component)
	if err != nil {
		return nil, err
	}
	return imaging.Render(comp, defaultScale(a.Scale))
}

func (s *Server) handleImageRender(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[renderArgs](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	return imaging.Render(img, defaultScale(a.Scale))
}

// handleImageSave writes the converted image, or one component of it when
// component is set, to output_path.
func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		imageArgs
		OutputPath string `json:"output_path"`
		Component  int    `json:"component"`
	}](args)
	if err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	if a.Component != 0 {
		if img, err = img.Component(a.Component); err != nil {
			return nil, err
		}
	}
	return imaging.Save(img, a.OutputPath)
}

// === Region Operation Handlers ===

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		renderArgs
		regionArgs
	}](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, defaultScale(a.Scale))
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		renderArgs
		Region string `json:"region"`
	}](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	return imaging.CropQuadrant(img, a.Region, defaultScale(a.Scale))
}

func (s *Server) handleImageGridOverlay(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		imageArgs
		GridSpacing     int    `json:"grid_spacing"`
		ShowCoordinates *bool  `json:"show_coordinates"`
		GridColor       string `json:"grid_color"`
	}](args)
	if err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	showCoordinates := a.ShowCoordinates == nil || *a.ShowCoordinates
	return imaging.GridOverlay(img, a.GridSpacing, showCoordinates, a.GridColor)
}

// === Color Operation Handlers ===

func (s *Server) handleImageSamplePixel(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		imageArgs
		X int `json:"x"`
		Y int `json:"y"`
	}](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

func (s *Server) handleImageSamplePixelsMulti(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		imageArgs
		Points []imaging.LabeledPoint `json:"points"`
	}](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, a.Points)
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		imageArgs
		Count  int         `json:"count"`
		Region *regionArgs `json:"region,omitempty"`
	}](args)
	if err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		r := a.Region.region()
		region = &r
	}
	return imaging.DominantColors(img, a.Count, region)
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	a, err := decodeArgs[struct {
		imageArgs
		Region1 regionArgs `json:"region1"`
		Region2 regionArgs `json:"region2"`
	}](args)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.imageArgs)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1.region(), a.Region2.region())
}
