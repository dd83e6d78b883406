package portal

import "github.com/grindlemire/go-portal/internal/geometry"

// Record tracks one in-flight (or recently active) portal transition.
// There is at most one Record per (ID, Namespace) pair in a Store;
// re-triggering an existing portal mutates the existing record.
//
// All fields are owned by the UI goroutine that owns the Store. The
// coordinator mutates them through chained scheduled callbacks; the
// overlay renderer and markers read them every pass.
type Record struct {
	ID        ID
	Namespace Namespace

	// Phase flags. Behaviorally these form the lifecycle
	// Idle -> Armed -> Forward-Animating -> Handoff -> Settled, and
	// the reverse path back to Idle.
	Initialized bool // registered and eligible to animate
	AnimateView bool // forward animation is driving toward the destination
	HideView    bool // destination is visible; the floating layer's job is done
	ShowLayer   bool // floating overlay should be mounted

	// Live anchors, as last reported by marker views. Either may be
	// nil if the corresponding view is not currently mounted.
	SourceAnchor      *geometry.Rect
	DestinationAnchor *geometry.Rect

	// Last-known-good anchors, retained so the floating overlay keeps
	// animating even if the originating view unmounts mid-transition
	// (a dismissing sheet, a recycled list cell).
	CachedSourceAnchor      *geometry.Rect
	CachedDestinationAnchor *geometry.Rect

	// FloatingContent is the opaque view content drawn as the
	// traveling proxy, supplied by the caller at trigger time.
	FloatingContent any

	Animation AnimationSpec
	Corners   *CornerStyle
	Removal   Removal

	// GroupID ties this record to a coordinated multi-portal trigger.
	// Exactly one member of an active group has GroupCoordinator set;
	// only that member reports completion to the caller.
	GroupID          string
	GroupCoordinator bool

	completion func(forward bool)
}

// SourceVisible reports whether the real source view should be shown.
// The source hides itself as soon as a destination anchor is
// registered, regardless of phase: once both ends exist, the floating
// layer and then the destination own the pixels.
func (r *Record) SourceVisible() bool {
	return r.DestinationAnchor == nil
}

// DestinationVisible reports whether the real destination view should
// be shown. Before the handoff the destination stays hidden behind the
// floating overlay; an uninitialized record imposes nothing.
func (r *Record) DestinationVisible() bool {
	if r.HideView {
		return true
	}
	return !r.Initialized
}

// SourceRect resolves the rectangle the overlay departs from: the live
// source anchor, or the cached one if the source view has unmounted.
func (r *Record) SourceRect() (geometry.Rect, bool) {
	if r.SourceAnchor != nil {
		return *r.SourceAnchor, true
	}
	if r.CachedSourceAnchor != nil {
		return *r.CachedSourceAnchor, true
	}
	return geometry.Rect{}, false
}

// DestinationRect resolves the rectangle the overlay lands on, falling
// back to the cached anchor like SourceRect.
func (r *Record) DestinationRect() (geometry.Rect, bool) {
	if r.DestinationAnchor != nil {
		return *r.DestinationAnchor, true
	}
	if r.CachedDestinationAnchor != nil {
		return *r.CachedDestinationAnchor, true
	}
	return geometry.Rect{}, false
}

// applyAnchor writes a freshly published rectangle into the live and
// cached fields for the given role. Absent anchors are never applied;
// a live anchor only changes when a new value arrives or the record is
// torn down.
func (r *Record) applyAnchor(role Role, rect geometry.Rect) {
	rc := rect
	switch role {
	case RoleSource:
		r.SourceAnchor = &rc
		cached := rc
		r.CachedSourceAnchor = &cached
	case RoleDestination:
		r.DestinationAnchor = &rc
		cached := rc
		r.CachedDestinationAnchor = &cached
	}
}

// reset returns the record to Idle at the end of a reverse transition:
// phase flags, configuration, content, completion, and live anchors
// are cleared. Identity and group membership persist (groups clear
// their own fields on teardown), and cached anchors are retained
// harmlessly so a re-trigger starts from known geometry.
func (r *Record) reset() {
	r.Initialized = false
	r.AnimateView = false
	r.HideView = false
	r.ShowLayer = false
	r.SourceAnchor = nil
	r.DestinationAnchor = nil
	r.FloatingContent = nil
	r.Animation = AnimationSpec{}
	r.Corners = nil
	r.Removal = RemovalInstant
	r.completion = nil
}
