// Package teahost adapts a bubbletea program loop to the portal
// coordinator's host interfaces. The program's root model owns a Host,
// starts its clock from Init, and forwards every TickMsg to Update;
// scheduled callbacks and animation completions then run on the update
// goroutine, which is the same goroutine that owns the portal store.
package teahost

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	portal "github.com/grindlemire/go-portal"
)

// TickMsg advances the host clock. It is emitted by the command
// returned from Init and Update.
type TickMsg time.Time

// DefaultFPS is the clock rate used when no option overrides it.
const DefaultFPS = 30

// Host implements portal.Scheduler and portal.Animator on top of the
// bubbletea update loop. All methods must be called from the program's
// Update goroutine.
type Host struct {
	interval time.Duration
	now      time.Time
	seq      int
	tasks    []hostTask
	anims    []hostAnimation
}

var _ portal.Host = (*Host)(nil)

type hostTask struct {
	due time.Time
	seq int
	fn  func()
}

type hostAnimation struct {
	spec    portal.AnimationSpec
	started time.Time
	done    func()
}

// Option configures a Host.
type Option func(*Host)

// WithFPS sets the clock rate. Higher rates make Progress smoother at
// the cost of more renders.
func WithFPS(fps int) Option {
	return func(h *Host) {
		if fps > 0 {
			h.interval = time.Second / time.Duration(fps)
		}
	}
}

// New creates a host ticking at DefaultFPS.
func New(opts ...Option) *Host {
	h := &Host{
		interval: time.Second / DefaultFPS,
		now:      time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init returns the command that starts the clock. Return it from the
// root model's Init.
func (h *Host) Init() tea.Cmd {
	h.now = time.Now()
	return h.tick()
}

// Update handles a TickMsg: it advances the clock, runs every callback
// that has come due, completes finished animations, and returns the
// command for the next tick. Messages of any other type are ignored
// and return nil.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	t, ok := msg.(TickMsg)
	if !ok {
		return nil
	}
	h.now = time.Time(t)
	h.runDue()
	h.completeAnimations()
	return h.tick()
}

func (h *Host) tick() tea.Cmd {
	return tea.Tick(h.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Schedule queues fn for the first tick at or after now+d. A zero
// delay runs on the next tick, never inline, so a render pass lands
// between a mutation and the callback that depends on it.
func (h *Host) Schedule(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	h.seq++
	h.tasks = append(h.tasks, hostTask{due: h.now.Add(d), seq: h.seq, fn: fn})
}

// Animate applies the mutation immediately and reports completion on
// the first tick at or after the spec's duration. The visual tween
// itself is read back through Progress.
func (h *Host) Animate(spec portal.AnimationSpec, apply func(), done func()) {
	apply()
	h.anims = append(h.anims, hostAnimation{spec: spec, started: h.now, done: done})
}

// Progress reports the eased progress of the most recently started
// active animation, in [0, 1]. With no animation in flight it reports
// 1, so an interpolator built on it parks at the target. Feed it to
// portal.WithInterpolator for a smooth tween instead of the default
// hard cut.
func (h *Host) Progress() float64 {
	if len(h.anims) == 0 {
		return 1
	}
	a := h.anims[len(h.anims)-1]
	if a.spec.Duration <= 0 {
		return 1
	}
	t := float64(h.now.Sub(a.started)) / float64(a.spec.Duration)
	return ease(a.spec.Curve, clamp01(t))
}

// Animating reports whether any animation is still in flight.
func (h *Host) Animating() bool {
	return len(h.anims) > 0
}

func (h *Host) runDue() {
	// Callbacks may schedule more work; anything due within this tick
	// runs in the same pass, in deadline then scheduling order.
	for {
		best := -1
		for i, task := range h.tasks {
			if task.due.After(h.now) {
				continue
			}
			if best < 0 || task.due.Before(h.tasks[best].due) ||
				(task.due.Equal(h.tasks[best].due) && task.seq < h.tasks[best].seq) {
				best = i
			}
		}
		if best < 0 {
			return
		}
		task := h.tasks[best]
		h.tasks = append(h.tasks[:best], h.tasks[best+1:]...)
		task.fn()
	}
}

func (h *Host) completeAnimations() {
	remaining := h.anims[:0]
	var finished []hostAnimation
	for _, a := range h.anims {
		if h.now.Sub(a.started) >= a.spec.Duration {
			finished = append(finished, a)
			continue
		}
		remaining = append(remaining, a)
	}
	h.anims = remaining
	for _, a := range finished {
		a.done()
	}
}

// ease maps linear progress through the spec's timing curve.
func ease(c portal.Curve, t float64) float64 {
	switch c {
	case portal.CurveLinear:
		return t
	case portal.CurveEaseIn:
		return t * t
	case portal.CurveEaseOut:
		return 1 - (1-t)*(1-t)
	case portal.CurveSpring:
		if t >= 1 {
			return 1
		}
		return 1 - math.Exp(-6*t)*math.Cos(12*t)
	default:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
