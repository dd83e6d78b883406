package portal

import "time"

// DefaultArmDelay is the pause between mounting the floating overlay
// and starting the forward animation. The just-mounted overlay and the
// freshly registered destination anchor both need one layout pass to
// resolve before the animation reads them.
const DefaultArmDelay = 50 * time.Millisecond

// Coordinator mutates Records in response to triggers and drives the
// host's animation primitive. One coordinator serves one Store; both
// live on the host's UI goroutine.
type Coordinator struct {
	store    *Store
	host     Host
	armDelay time.Duration
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithArmDelay overrides DefaultArmDelay. Tests usually set it to zero
// so the forward animation starts on the next tick.
func WithArmDelay(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.armDelay = d
	}
}

// NewCoordinator creates a coordinator bound to the given store and
// host.
func NewCoordinator(store *Store, host Host, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		store:    store,
		host:     host,
		armDelay: DefaultArmDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the record store this coordinator mutates.
func (c *Coordinator) Store() *Store {
	return c.store
}

// EnsureRegistered creates the record for (id, ns) if absent, so
// markers have something to anchor into before any trigger fires.
// Idempotent; called on marker mount.
func (c *Coordinator) EnsureRegistered(id ID, ns Namespace) *Record {
	return c.store.Ensure(id, ns)
}

// SetActive is the sole state-transition entry point. active=true runs
// the forward path: arm the record, mount the floating overlay at the
// source rectangle, start the animation after the arm delay, reveal
// the destination on completion, and drop the overlay one tick later
// so there is never a frame where neither is visible. active=false
// runs the reverse path and clears the record back to Idle; it reuses
// the configuration the forward trigger attached, so content and opts
// are ignored on reverse.
//
// Re-triggering active=true while already forward-animating re-applies
// the configuration and restarts the scheduled animation. Scheduled
// callbacks are never cancelled, so a rapid forward/reverse toggle
// interleaves in scheduling order: the record stays internally
// consistent, but the terminal state follows whichever completion ran
// last.
func (c *Coordinator) SetActive(id ID, ns Namespace, active bool, content any, opts ...TransitionOption) {
	rec := c.store.Ensure(id, ns)
	if active {
		c.forward(rec, content, newTransitionConfig(opts))
		return
	}
	c.reverse(rec)
}

// forward arms the record and chains the forward phase changes through
// the scheduler. Each step's callback is scheduled only after the
// prior step's mutation has landed in the store, because the render
// pass reads the store on every tick in between.
func (c *Coordinator) forward(rec *Record, content any, cfg transitionConfig) {
	cfg.spec.validate(c.store.logger, c.store.debugAssert)

	rec.Initialized = true
	rec.FloatingContent = content
	rec.Animation = cfg.spec
	rec.Corners = cfg.corners
	rec.Removal = cfg.removal
	rec.completion = cfg.completion
	rec.ShowLayer = true
	c.store.notify()

	if rec.DestinationAnchor == nil && rec.CachedDestinationAnchor == nil {
		// Accepted degraded state: with no destination the overlay
		// holds at the source rectangle until one registers.
		c.store.logger.Debug("forward trigger with no destination anchor",
			"id", rec.ID, "namespace", rec.Namespace)
	}

	c.host.Schedule(c.armDelay, func() {
		c.host.Animate(rec.Animation, func() {
			rec.AnimateView = true
			c.store.notify()
		}, func() {
			// Reveal the destination first, then drop the overlay on
			// the next tick. Same-tick teardown would leave one frame
			// with neither visible.
			rec.HideView = true
			c.store.notify()
			c.host.Schedule(0, func() {
				rec.ShowLayer = false
				c.store.notify()
				if fn := rec.completion; fn != nil {
					fn(true)
				}
			})
		})
	})
}

// reverse re-hides the destination, remounts the overlay at the
// destination rectangle, and animates back to the source. Completion
// clears the record to Idle.
func (c *Coordinator) reverse(rec *Record) {
	rec.HideView = false
	rec.ShowLayer = true
	c.store.notify()

	// Next tick, not inline: the overlay remount and the re-hidden
	// destination must be rendered before the animation flips the
	// interpolated rectangle back toward the source.
	c.host.Schedule(0, func() {
		c.host.Animate(rec.Animation, func() {
			rec.AnimateView = false
			c.store.notify()
		}, func() {
			fn := rec.completion
			rec.reset()
			c.store.notify()
			if fn != nil {
				fn(false)
			}
		})
	})
}

// TransferActive rebinds an in-flight transition from one portal ID to
// another without replaying the animation, for carousel-style flows
// where the user swiped to the next item while the detail view was
// open. The old record is cleared to Idle; the new record lands
// directly in the settled post-forward state with the old record's
// content and geometry.
func (c *Coordinator) TransferActive(from, to ID, ns Namespace) {
	src := c.store.Lookup(from, ns)
	if src == nil || !src.Initialized {
		c.store.logger.Debug("transfer from inactive portal ignored",
			"from", from, "to", to, "namespace", ns)
		return
	}

	dst := c.store.Ensure(to, ns)
	dst.Initialized = true
	dst.AnimateView = true
	dst.HideView = true
	dst.ShowLayer = false
	dst.FloatingContent = src.FloatingContent
	dst.Animation = src.Animation
	dst.Corners = src.Corners
	dst.Removal = src.Removal
	dst.completion = src.completion
	dst.SourceAnchor = src.SourceAnchor
	dst.DestinationAnchor = src.DestinationAnchor
	dst.CachedSourceAnchor = src.CachedSourceAnchor
	dst.CachedDestinationAnchor = src.CachedDestinationAnchor

	src.reset()
	c.store.notify()
}

// Portaler derives a portal ID from a domain item, for the
// item-presence trigger variants.
type Portaler interface {
	PortalID() ID
}

// ItemTrigger adapts item presence to SetActive calls: a non-nil item
// triggers the forward path under the item's derived ID, and a nil
// item tears down whichever item was last presented. One ItemTrigger
// per presentation site.
type ItemTrigger[T Portaler] struct {
	c    *Coordinator
	ns   Namespace
	last *ID
}

// NewItemTrigger creates an item-presence trigger in the given
// namespace.
func NewItemTrigger[T Portaler](c *Coordinator, ns Namespace) *ItemTrigger[T] {
	return &ItemTrigger[T]{c: c, ns: ns}
}

// Set presents item (forward) or, when item is nil, dismisses the
// previously presented item (reverse). content builds the floating
// proxy for the presented item.
func (t *ItemTrigger[T]) Set(item *T, content func(T) any, opts ...TransitionOption) {
	if item == nil {
		if t.last != nil {
			t.c.SetActive(*t.last, t.ns, false, nil)
			t.last = nil
		}
		return
	}

	id := (*item).PortalID()
	if t.last != nil && *t.last != id {
		// A different item appeared while one was presented: hand the
		// in-flight transition to the new identity instead of
		// animating twice.
		t.c.TransferActive(*t.last, id, t.ns)
		if rec := t.c.store.Lookup(id, t.ns); rec != nil && rec.Initialized {
			if content != nil {
				rec.FloatingContent = content(*item)
			}
			t.c.store.notify()
			t.last = &id
			return
		}
		// Transfer had nothing to move; fall through to a fresh
		// forward trigger.
	}
	var body any
	if content != nil {
		body = content(*item)
	}
	t.c.SetActive(id, t.ns, true, body, opts...)
	t.last = &id
}
