package portal

import "time"

// Group fans a single trigger out to a fixed set of portals sharing a
// group ID, so a stack of photos or a row of cards travels as one
// gesture. Member 0 is the completion authority: only its completion
// callback fires, once per forward or reverse cycle, regardless of
// member count. All other members run with a silent completion.
type Group struct {
	c       *Coordinator
	ns      Namespace
	groupID string
	members []ID

	baseDelay time.Duration
	stagger   time.Duration
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithStagger delays member i's trigger by i times d, cascading the
// group instead of moving it as a rigid block.
func WithStagger(d time.Duration) GroupOption {
	return func(g *Group) {
		g.stagger = d
	}
}

// WithBaseDelay delays every member's trigger by d.
func WithBaseDelay(d time.Duration) GroupOption {
	return func(g *Group) {
		g.baseDelay = d
	}
}

// NewGroup creates a group over a static member list and registers
// every member so markers can anchor in immediately. The first member
// becomes the completion authority.
func NewGroup(c *Coordinator, ns Namespace, groupID string, members []ID, opts ...GroupOption) *Group {
	g := &Group{
		c:       c,
		ns:      ns,
		groupID: groupID,
		members: members,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.designate(members)
	return g
}

// designate registers members and marks exactly one of them (the
// first) as the group's completion authority.
func (g *Group) designate(ids []ID) {
	for i, id := range ids {
		rec := g.c.EnsureRegistered(id, g.ns)
		rec.GroupID = g.groupID
		rec.GroupCoordinator = i == 0
	}
}

// SetActive fans the trigger out to every member. content builds each
// member's floating proxy from its ID. The caller's completion (from
// WithCompletion) fires exactly once per cycle, on the authority
// member; on the forward path it is additionally deferred by
// (memberCount-1) stagger intervals so "all done" means the slowest
// member, not the first.
func (g *Group) SetActive(active bool, content func(ID) any, opts ...TransitionOption) {
	g.fanOut(g.members, active, content, opts)
}

func (g *Group) fanOut(ids []ID, active bool, content func(ID) any, opts []TransitionOption) {
	trailing := time.Duration(len(ids)-1) * g.stagger
	for i, id := range ids {
		memberOpts := append(opts[:len(opts):len(opts)], g.memberCompletion(id, trailing))
		delay := g.baseDelay + time.Duration(i)*g.stagger

		var body any
		if active && content != nil {
			body = content(id)
		}
		if delay <= 0 {
			g.c.SetActive(id, g.ns, active, body, memberOpts...)
			continue
		}
		g.c.host.Schedule(delay, func() {
			g.c.SetActive(id, g.ns, active, body, memberOpts...)
		})
	}
}

// memberCompletion wraps the per-trigger completion for one member.
// Followers get a silent completion that only tends group bookkeeping;
// the authority member (whichever record carries the flag when the
// cycle finishes) forwards to the caller, deferring forward completion
// past the last staggered member.
func (g *Group) memberCompletion(id ID, trailing time.Duration) TransitionOption {
	return func(cfg *transitionConfig) {
		caller := cfg.completion
		cfg.completion = func(forward bool) {
			rec := g.c.store.Lookup(id, g.ns)
			authority := rec != nil && rec.GroupCoordinator
			if !forward && rec != nil {
				// Teardown clears group bookkeeping on the record
				// (reset leaves group fields to their owner).
				rec.GroupID = ""
				rec.GroupCoordinator = false
			}
			if !authority || caller == nil {
				return
			}
			if forward && trailing > 0 {
				g.c.host.Schedule(trailing, func() {
					caller(true)
				})
				return
			}
			caller(forward)
		}
	}
}

// GroupItems is the item-array variant of Group: each call to Set
// diffs the new membership against the previous one, triggering the
// forward path for entering items and the reverse path for leaving
// items. The first item of the current array is the completion
// authority.
type GroupItems[T Portaler] struct {
	group *Group
	prev  []ID
}

// NewGroupItems creates an item-array group trigger.
func NewGroupItems[T Portaler](c *Coordinator, ns Namespace, groupID string, opts ...GroupOption) *GroupItems[T] {
	g := &Group{
		c:       c,
		ns:      ns,
		groupID: groupID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return &GroupItems[T]{group: g}
}

// Set reconciles the group against items. content builds the floating
// proxy for an entering item; opts apply to the triggers fired by this
// reconciliation.
func (gi *GroupItems[T]) Set(items []T, content func(T) any, opts ...TransitionOption) {
	current := make([]ID, len(items))
	byID := make(map[ID]T, len(items))
	for i, item := range items {
		id := item.PortalID()
		current[i] = id
		byID[id] = item
	}

	entering := difference(current, gi.prev)
	leaving := difference(gi.prev, current)

	// Membership and authority follow the current array before any
	// trigger fires. Leaving members are demoted immediately so the
	// group never holds two authority records at once; on a full
	// teardown (empty current array) the old authority keeps its flag
	// so exactly one reverse completion still reports.
	gi.group.designate(current)
	if len(current) > 0 {
		for _, id := range leaving {
			if rec := gi.group.c.store.Lookup(id, gi.group.ns); rec != nil {
				rec.GroupCoordinator = false
			}
		}
	}

	if len(entering) > 0 {
		gi.group.fanOut(entering, true, func(id ID) any {
			if content == nil {
				return nil
			}
			return content(byID[id])
		}, opts)
	}
	if len(leaving) > 0 {
		gi.group.fanOut(leaving, false, nil, opts)
	}

	gi.prev = current
}

// IDs returns the current membership in array order.
func (gi *GroupItems[T]) IDs() []ID {
	return gi.prev
}

// difference returns the IDs in a that are not in b, preserving a's
// order.
func difference(a, b []ID) []ID {
	if len(a) == 0 {
		return nil
	}
	seen := make(map[ID]struct{}, len(b))
	for _, id := range b {
		seen[id] = struct{}{}
	}
	var out []ID
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
