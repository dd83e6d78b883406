package portal

import "time"

// Scheduler runs callbacks on the host framework's UI loop after a
// delay. The coordinator sequences every phase change through it, so
// implementations must run callbacks on the same goroutine that owns
// the Store, and callbacks scheduled for the same deadline must run in
// scheduling order. A delay of zero means "the next tick", never
// "inline right now": a render pass is expected between a mutation and
// the callback that depends on it having been seen.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

// Animator drives the host framework's animation primitive. Animate
// runs apply on the UI loop (flipping the animated record fields),
// tweens the visual values it affects over spec, and calls done
// exactly once when the animation completes per spec.Criteria. If the
// host never reports completion, the transition parks in its current
// phase; the coordinator schedules no timeouts of its own.
type Animator interface {
	Animate(spec AnimationSpec, apply func(), done func())
}

// Host is the full set of capabilities the coordinator needs from the
// UI framework.
type Host interface {
	Scheduler
	Animator
}
