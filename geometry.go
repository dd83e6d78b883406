package portal

import "github.com/grindlemire/go-portal/internal/geometry"

// Re-export geometry types so users import this single package.

// Rect is a rectangle in the shared screen coordinate space.
type Rect = geometry.Rect

// Point is an (X, Y) coordinate.
type Point = geometry.Point

// CornerRadii is a per-corner radius set.
type CornerRadii = geometry.CornerRadii

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geometry.NewRect(x, y, width, height)
}

// UniformRadii returns CornerRadii with the same radius on every corner.
func UniformRadii(r float64) CornerRadii {
	return geometry.UniformRadii(r)
}
