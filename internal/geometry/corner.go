package geometry

// CornerRadii holds a per-corner radius, in the same units as Rect.
// Source and destination views frequently differ in corner treatment
// (a square grid thumbnail expanding into a rounded card), so radii
// interpolate alongside position and size.
type CornerRadii struct {
	TopLeft, TopRight       float64
	BottomRight, BottomLeft float64
}

// UniformRadii returns CornerRadii with the same radius on every corner.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero returns true if every corner radius is zero.
func (c CornerRadii) IsZero() bool {
	return c == CornerRadii{}
}

// Lerp linearly interpolates each corner radius with t clamped to [0, 1].
func (c CornerRadii) Lerp(other CornerRadii, t float64) CornerRadii {
	t = clamp01(t)
	return CornerRadii{
		TopLeft:     lerp(c.TopLeft, other.TopLeft, t),
		TopRight:    lerp(c.TopRight, other.TopRight, t),
		BottomRight: lerp(c.BottomRight, other.BottomRight, t),
		BottomLeft:  lerp(c.BottomLeft, other.BottomLeft, t),
	}
}
