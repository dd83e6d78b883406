package portal

import (
	"math"
	"sort"
	"time"
)

// MockHost is a deterministic Host implementation for testing. A
// manual clock drives scheduled callbacks and animation completions in
// deadline order, so tests can step through a transition's phases one
// tick at a time and assert the store between them.
type MockHost struct {
	now   time.Duration
	seq   int
	tasks []*mockTask

	// Animations records every Animate call in start order, for
	// asserting stagger timing and restart behavior.
	Animations []*MockAnimation
}

// MockAnimation captures one Animate call.
type MockAnimation struct {
	Spec    AnimationSpec
	Started time.Duration // clock time the animation was started
}

type mockTask struct {
	due time.Duration
	seq int
	fn  func()
}

// Ensure MockHost implements Host.
var _ Host = (*MockHost)(nil)

// NewMockHost creates a mock host with the clock at zero.
func NewMockHost() *MockHost {
	return &MockHost{}
}

// Now returns the current mock clock time.
func (h *MockHost) Now() time.Duration {
	return h.now
}

// Schedule queues fn to run when the clock reaches now+d. Equal
// deadlines run in scheduling order.
func (h *MockHost) Schedule(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	h.seq++
	h.tasks = append(h.tasks, &mockTask{due: h.now + d, seq: h.seq, fn: fn})
}

// Animate applies the mutation immediately, records the animation, and
// queues done at the spec's duration, mimicking a host whose animated
// values settle exactly on schedule.
func (h *MockHost) Animate(spec AnimationSpec, apply func(), done func()) {
	apply()
	h.Animations = append(h.Animations, &MockAnimation{Spec: spec, Started: h.now})
	h.Schedule(spec.Duration, done)
}

// Advance moves the clock forward by d, running every callback that
// comes due, in deadline then scheduling order. Callbacks may schedule
// more work; anything due within the same advance runs too.
func (h *MockHost) Advance(d time.Duration) {
	target := h.now + d
	for {
		task := h.pop(target)
		if task == nil {
			break
		}
		if task.due > h.now {
			h.now = task.due
		}
		task.fn()
	}
	h.now = target
}

// Step runs the single earliest queued callback, advancing the clock
// to its deadline. Returns false if nothing is queued. Use it to
// observe intermediate states that Advance would run straight through,
// like the one-tick overlap between destination reveal and overlay
// teardown.
func (h *MockHost) Step() bool {
	task := h.pop(math.MaxInt64)
	if task == nil {
		return false
	}
	if task.due > h.now {
		h.now = task.due
	}
	task.fn()
	return true
}

// Drain runs Step until the queue is empty.
func (h *MockHost) Drain() {
	for h.Step() {
	}
}

// Pending returns the number of queued callbacks.
func (h *MockHost) Pending() int {
	return len(h.tasks)
}

// pop removes and returns the earliest task due at or before limit, or
// nil.
func (h *MockHost) pop(limit time.Duration) *mockTask {
	if len(h.tasks) == 0 {
		return nil
	}
	sort.SliceStable(h.tasks, func(i, j int) bool {
		if h.tasks[i].due != h.tasks[j].due {
			return h.tasks[i].due < h.tasks[j].due
		}
		return h.tasks[i].seq < h.tasks[j].seq
	})
	if h.tasks[0].due > limit {
		return nil
	}
	task := h.tasks[0]
	h.tasks = h.tasks[1:]
	return task
}
