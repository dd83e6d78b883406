package portal

import (
	"github.com/google/uuid"

	"github.com/grindlemire/go-portal/internal/geometry"
)

// ID identifies a portal within a Namespace. Any stable string works;
// callers with richer identity types derive an ID from them (see
// Portaler).
type ID string

// Namespace scopes portal IDs so identically-named portals on
// independent screens never collide.
type Namespace string

// NewNamespace returns a unique namespace token.
func NewNamespace() Namespace {
	return Namespace(uuid.NewString())
}

// Role identifies which end of a portal a marker anchors.
type Role int

const (
	// RoleSource marks the view the transition departs from.
	RoleSource Role = iota
	// RoleDestination marks the view the transition lands on.
	RoleDestination
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleDestination:
		return "destination"
	}
	return "unknown"
}

// Kind distinguishes multiple anchors published for the same portal
// end. Markers publish KindBounds unless configured otherwise.
type Kind int

const (
	// KindBounds is the marked view's border box.
	KindBounds Kind = iota
	// KindContent is the marked view's content box, for hosts that
	// track padding separately.
	KindContent
)

// AnchorKey identifies one published rectangle for one layout pass.
// Keys are not persisted beyond the pass they were published in.
type AnchorKey struct {
	Role      Role
	ID        ID
	Namespace Namespace
	Kind      Kind
}

// AnchorMap collects the rectangles published by markers during a
// single layout pass. Duplicate registrations for the same key are
// resolved last-write-wins; a key that is absent simply was not
// published this pass, which never invalidates a previously resolved
// anchor.
type AnchorMap map[AnchorKey]geometry.Rect
