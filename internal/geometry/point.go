package geometry

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Lerp linearly interpolates between p and other with t clamped to [0, 1].
func (p Point) Lerp(other Point, t float64) Point {
	t = clamp01(t)
	return Point{X: lerp(p.X, other.X, t), Y: lerp(p.Y, other.Y, t)}
}
