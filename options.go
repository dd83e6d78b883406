package portal

import "log/slog"

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger for diagnostic notices. Defaults to
// slog.Default(). Nothing in this package logs above Warn; degraded
// visual states are diagnostics, never errors.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithChangeHook sets a callback invoked after any mutation to the
// record store, typically wired to the host's mark-dirty primitive so
// a render pass follows every phase change.
func WithChangeHook(fn func()) StoreOption {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithDebugIndicators makes the overlay renderer emit indicator layers
// for every registered source and destination anchor in this scope.
// Pure presentation; no effect on coordination logic.
func WithDebugIndicators() StoreOption {
	return func(s *Store) {
		s.debugIndicators = true
	}
}

// WithDebugAssertions upgrades soft validation warnings (like an
// animation duration below the recommended floor) to panics. Meant for
// development builds.
func WithDebugAssertions() StoreOption {
	return func(s *Store) {
		s.debugAssert = true
	}
}

// transitionConfig is the per-trigger configuration assembled from
// TransitionOptions.
type transitionConfig struct {
	spec       AnimationSpec
	corners    *CornerStyle
	removal    Removal
	completion func(forward bool)
}

// TransitionOption configures a single trigger.
type TransitionOption func(*transitionConfig)

// WithAnimation sets the timing spec for this trigger. A zero spec
// falls back to DefaultAnimation.
func WithAnimation(spec AnimationSpec) TransitionOption {
	return func(c *transitionConfig) {
		c.spec = spec
	}
}

// WithCornerStyle sets start and end corner radii to interpolate
// alongside position and size.
func WithCornerStyle(cs CornerStyle) TransitionOption {
	return func(c *transitionConfig) {
		c.corners = &cs
	}
}

// WithRemoval controls whether the floating layer disappears instantly
// or fades when torn down.
func WithRemoval(r Removal) TransitionOption {
	return func(c *transitionConfig) {
		c.removal = r
	}
}

// WithCompletion sets the callback invoked with true on forward
// completion and false on reverse completion. For grouped triggers
// only the coordinating member's callback fires.
func WithCompletion(fn func(forward bool)) TransitionOption {
	return func(c *transitionConfig) {
		c.completion = fn
	}
}

func newTransitionConfig(opts []TransitionOption) transitionConfig {
	var cfg transitionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.spec = cfg.spec.orDefault()
	return cfg
}
