package portal

import (
	"log/slog"
	"time"

	"github.com/grindlemire/go-portal/internal/geometry"
)

// Curve identifies the timing curve the host's animation primitive
// applies while tweening.
type Curve int

const (
	// CurveEaseInOut accelerates then decelerates (default).
	CurveEaseInOut Curve = iota
	// CurveLinear moves at constant speed.
	CurveLinear
	// CurveEaseIn starts slow and accelerates.
	CurveEaseIn
	// CurveEaseOut starts fast and decelerates.
	CurveEaseOut
	// CurveSpring overshoots and settles, if the host supports it.
	CurveSpring
)

// CompletionCriteria controls what "complete" means for a portal
// animation.
type CompletionCriteria int

const (
	// CompleteOnSettle reports completion when the animated values
	// settle at their target (default).
	CompleteOnSettle CompletionCriteria = iota
	// CompleteOnRemoval reports completion when the animated view
	// leaves the hierarchy. Use this when the transition rides along
	// a modal presentation or dismissal.
	CompleteOnRemoval
)

// AnimationSpec describes the timing of a portal animation. Duration
// is an explicit field; the coordinator never introspects an opaque
// animation value to recover it.
type AnimationSpec struct {
	Duration time.Duration
	Curve    Curve
	Criteria CompletionCriteria
}

// DefaultAnimation is applied when a trigger carries no spec.
var DefaultAnimation = AnimationSpec{
	Duration: 350 * time.Millisecond,
	Curve:    CurveEaseInOut,
}

// MinRemovalDuration is the recommended duration floor for animations
// completing on view removal. Shorter animations race the removal and
// produce visible artifacts during the handoff.
const MinRemovalDuration = 150 * time.Millisecond

// validate emits a developer-facing warning for specs known to cause
// visual artifacts. Non-fatal unless the store runs with debug
// assertions, in which case it panics so the mistake is caught early.
func (s AnimationSpec) validate(log *slog.Logger, assert bool) {
	if s.Criteria != CompleteOnRemoval || s.Duration >= MinRemovalDuration {
		return
	}
	if assert {
		panic("portal: removal-completed animation shorter than MinRemovalDuration causes visible artifacts")
	}
	log.Warn("animation duration below recommended floor for removal-completed transitions",
		"duration", s.Duration,
		"floor", MinRemovalDuration,
	)
}

// orDefault fills in the default spec for a zero value.
func (s AnimationSpec) orDefault() AnimationSpec {
	if s == (AnimationSpec{}) {
		return DefaultAnimation
	}
	return s
}

// RoundingStyle selects how interpolated corners are rounded.
type RoundingStyle int

const (
	// RoundingCircular uses plain circular corner arcs.
	RoundingCircular RoundingStyle = iota
	// RoundingContinuous uses continuous-curvature ("squircle")
	// corners on hosts that support them.
	RoundingContinuous
)

// CornerStyle carries the start and end corner radii interpolated
// alongside position and size, so a square thumbnail can grow into a
// rounded card without a visible jump in corner treatment.
type CornerStyle struct {
	Source      geometry.CornerRadii
	Destination geometry.CornerRadii
	Style       RoundingStyle
}

// At returns the radii at interpolation progress t in [0, 1].
func (c CornerStyle) At(t float64) geometry.CornerRadii {
	return c.Source.Lerp(c.Destination, t)
}

// Removal controls how a floating layer disappears when torn down.
type Removal int

const (
	// RemovalInstant drops the layer on the next pass (default).
	RemovalInstant Removal = iota
	// RemovalFade asks the host to fade the layer out.
	RemovalFade
)
