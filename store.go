package portal

import (
	"log/slog"
)

// Store is the single source of truth for portal transitions within
// one portal scope. It holds every Record in registration order,
// keyed by (ID, Namespace), and the per-pass anchor map markers
// publish into.
//
// A Store is explicitly constructed and handed to markers,
// coordinators, and the overlay renderer; independent scopes (nested
// overlay stacks, parallel tests) each get their own. There is no
// package-level default.
//
// Thread rules: everything here must run on the host's UI goroutine.
// The coordinator's scheduled callbacks, the markers' publishes, and
// the renderer's reads all interleave on that one loop, which is the
// only synchronization this package relies on.
type Store struct {
	records []*Record
	index   map[recordKey]*Record

	// frame accumulates anchors published during the current layout
	// pass, merged into records by EndFrame.
	frame AnchorMap

	logger          *slog.Logger
	onChange        func()
	debugIndicators bool
	debugAssert     bool
}

type recordKey struct {
	id ID
	ns Namespace
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		index:  make(map[recordKey]*Record),
		frame:  make(AnchorMap),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure returns the record for (id, ns), creating it in Idle state if
// absent. Idempotent; the record keeps its registration order slot for
// the life of the store.
func (s *Store) Ensure(id ID, ns Namespace) *Record {
	key := recordKey{id: id, ns: ns}
	if rec, ok := s.index[key]; ok {
		return rec
	}
	rec := &Record{ID: id, Namespace: ns}
	s.index[key] = rec
	s.records = append(s.records, rec)
	s.notify()
	return rec
}

// Lookup returns the record for (id, ns), or nil.
func (s *Store) Lookup(id ID, ns Namespace) *Record {
	return s.index[recordKey{id: id, ns: ns}]
}

// Records returns the records in registration order. The slice is
// shared; callers must not mutate it.
func (s *Store) Records() []*Record {
	return s.records
}

// BeginFrame resets the per-pass anchor map. The host calls it at the
// start of each layout pass, before any marker publishes.
func (s *Store) BeginFrame() {
	clear(s.frame)
}

// PublishAnchor registers a resolved rectangle for this pass.
// Duplicate keys are last-write-wins; two markers fighting over the
// same key is degraded, not an error.
func (s *Store) PublishAnchor(key AnchorKey, rect Rect) {
	s.frame[key] = rect
}

// EndFrame merges the pass's published anchors into their records.
// Only fresh values are written: a key that went unpublished this pass
// leaves the record's live anchor untouched, so a briefly unmounted
// marker never snaps the overlay to a zero rectangle.
func (s *Store) EndFrame() {
	for key, rect := range s.frame {
		rec := s.Lookup(key.ID, key.Namespace)
		if rec == nil {
			s.logger.Debug("anchor published for unregistered portal",
				"id", key.ID, "namespace", key.Namespace, "role", key.Role)
			continue
		}
		rec.applyAnchor(key.Role, rect)
	}
	if len(s.frame) > 0 {
		s.notify()
	}
}

// notify signals the host that shared state changed and a render pass
// is needed. Mutation sites call it after the write has landed.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
