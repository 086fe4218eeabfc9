package bridge

import "fmt"

// Renderer is the implementation side of the bridge: how a shape is drawn.
type Renderer interface {
	// RenderCircle draws a circle of the given radius.
	RenderCircle(radius float64) string

	// RenderSquare draws a square of the given side length.
	RenderSquare(side float64) string
}

// VectorRenderer draws shapes as geometry.
type VectorRenderer struct{}

// RenderCircle implements Renderer.
func (VectorRenderer) RenderCircle(radius float64) string {
	return fmt.Sprintf("vector circle r=%.1f", radius)
}

// RenderSquare implements Renderer.
func (VectorRenderer) RenderSquare(side float64) string {
	return fmt.Sprintf("vector square side=%.1f", side)
}

// RasterRenderer draws shapes as pixels.
type RasterRenderer struct {
	// DPI is the raster density; zero means the 96 default.
	DPI int
}

// RenderCircle implements Renderer.
func (r RasterRenderer) RenderCircle(radius float64) string {
	return fmt.Sprintf("raster circle r=%.1f at %d dpi", radius, r.dpi())
}

// RenderSquare implements Renderer.
func (r RasterRenderer) RenderSquare(side float64) string {
	return fmt.Sprintf("raster square side=%.1f at %d dpi", side, r.dpi())
}

func (r RasterRenderer) dpi() int {
	if r.DPI <= 0 {
		return 96
	}

	return r.DPI
}

// Circle is the abstraction side of the bridge for round shapes.
type Circle struct {
	renderer Renderer
	radius   float64
}

// NewCircle creates a circle drawn through renderer.
func NewCircle(renderer Renderer, radius float64) *Circle {
	return &Circle{renderer: renderer, radius: radius}
}

// Draw renders the circle through the bridged implementation.
func (c *Circle) Draw() string { return c.renderer.RenderCircle(c.radius) }

// Scale multiplies the radius by factor.
func (c *Circle) Scale(factor float64) { c.radius *= factor }

// Square is the abstraction side of the bridge for square shapes.
type Square struct {
	renderer Renderer
	side     float64
}

// NewSquare creates a square drawn through renderer.
func NewSquare(renderer Renderer, side float64) *Square {
	return &Square{renderer: renderer, side: side}
}

// Draw renders the square through the bridged implementation.
func (s *Square) Draw() string { return s.renderer.RenderSquare(s.side) }

// Scale multiplies the side by factor.
func (s *Square) Scale(factor float64) { s.side *= factor }
