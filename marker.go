package portal

// Marker registers a view as the source or destination anchor of a
// portal. Create one per marked view, call Mount when the view enters
// the tree, Publish every layout pass with the view's resolved bounds,
// and Unmount when it leaves. An unmounted marker simply stops
// publishing; the record keeps the last resolved anchor.
//
// Visibility is the marker's other job: Opacity is a pure function of
// the shared record's phase, so the real views and the floating
// overlay never fight over the same pixels.
type Marker struct {
	store   *Store
	key     AnchorKey
	groupID string
	mounted bool
}

// MarkerOption configures a Marker.
type MarkerOption func(*Marker)

// WithKind sets the anchor kind published by this marker. Defaults to
// KindBounds.
func WithKind(k Kind) MarkerOption {
	return func(m *Marker) {
		m.key.Kind = k
	}
}

// WithGroup tags the marker's record with a group ID on mount, so a
// marker-mounted record is already a member when the group trigger
// fires. Coordinator designation stays with the Group.
func WithGroup(groupID string) MarkerOption {
	return func(m *Marker) {
		m.groupID = groupID
	}
}

// NewMarker creates a marker for one end of the portal (id, ns).
func NewMarker(store *Store, id ID, role Role, ns Namespace, opts ...MarkerOption) *Marker {
	m := &Marker{
		store: store,
		key: AnchorKey{
			Role:      role,
			ID:        id,
			Namespace: ns,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mount registers the marker's record so the registry has something to
// anchor into before any trigger fires. Idempotent.
func (m *Marker) Mount() {
	rec := m.store.Ensure(m.key.ID, m.key.Namespace)
	if m.groupID != "" {
		rec.GroupID = m.groupID
	}
	m.mounted = true
}

// Unmount stops the marker from publishing. The record's live anchor
// survives until the transition tears down; only fresh publishes
// overwrite it.
func (m *Marker) Unmount() {
	m.mounted = false
}

// Publish registers the view's resolved bounds for the current layout
// pass. Call between the store's BeginFrame and EndFrame. No-op while
// unmounted.
func (m *Marker) Publish(r Rect) {
	if !m.mounted {
		return
	}
	m.store.PublishAnchor(m.key, r)
}

// Opacity returns 0 or 1 for the marked view this pass, computed from
// the shared record independent of animation progress. A marker with
// no record yet is fully visible.
func (m *Marker) Opacity() float64 {
	rec := m.store.Lookup(m.key.ID, m.key.Namespace)
	if rec == nil {
		return 1
	}
	visible := true
	switch m.key.Role {
	case RoleSource:
		visible = rec.SourceVisible()
	case RoleDestination:
		visible = rec.DestinationVisible()
	}
	if visible {
		return 1
	}
	return 0
}

// Record returns the marker's record, or nil before Mount or
// EnsureRegistered has run.
func (m *Marker) Record() *Record {
	return m.store.Lookup(m.key.ID, m.key.Namespace)
}
