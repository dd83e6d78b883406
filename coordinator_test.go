package portal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// harness bundles the store, mock host, and coordinator most
// coordinator tests need.
type harness struct {
	store *Store
	host  *MockHost
	c     *Coordinator
	ns    Namespace
}

func newHarness(t *testing.T, opts ...CoordinatorOption) *harness {
	t.Helper()
	store := newTestStore(t)
	host := NewMockHost()
	return &harness{
		store: store,
		host:  host,
		c:     NewCoordinator(store, host, opts...),
		ns:    NewNamespace(),
	}
}

// publish runs one layout pass that registers the given anchors.
func (h *harness) publish(t *testing.T, id ID, src, dst *Rect) {
	t.Helper()
	h.store.BeginFrame()
	if src != nil {
		h.store.PublishAnchor(AnchorKey{Role: RoleSource, ID: id, Namespace: h.ns}, *src)
	}
	if dst != nil {
		h.store.PublishAnchor(AnchorKey{Role: RoleDestination, ID: id, Namespace: h.ns}, *dst)
	}
	h.store.EndFrame()
}

func TestCoordinator_ForwardSequence(t *testing.T) {
	h := newHarness(t)
	src := NewRect(0, 0, 10, 10)
	dst := NewRect(100, 40, 60, 60)

	h.c.EnsureRegistered("card1", h.ns)
	h.publish(t, "card1", &src, &dst)

	var completions []bool
	h.c.SetActive("card1", h.ns, true, "proxy",
		WithAnimation(AnimationSpec{Duration: 100 * time.Millisecond}),
		WithCompletion(func(forward bool) { completions = append(completions, forward) }),
	)

	rec := h.store.Lookup("card1", h.ns)
	require.True(t, rec.Initialized)
	require.True(t, rec.ShowLayer, "overlay mounts immediately")
	require.False(t, rec.AnimateView, "animation waits for the arm delay")
	require.Equal(t, "proxy", rec.FloatingContent)

	// One tick before the arm delay nothing has started.
	h.host.Advance(DefaultArmDelay - time.Millisecond)
	require.False(t, rec.AnimateView)
	require.Empty(t, h.host.Animations)

	// Arm delay elapses: the host animation starts and flips the
	// record toward the destination.
	h.host.Advance(time.Millisecond)
	require.True(t, rec.AnimateView)
	require.Len(t, h.host.Animations, 1)
	require.Equal(t, DefaultArmDelay, h.host.Animations[0].Started)

	// Animation completes: destination revealed while the overlay is
	// still mounted for one more tick.
	h.host.Step()
	require.True(t, rec.HideView)
	require.True(t, rec.ShowLayer, "overlay survives the reveal tick")
	require.Empty(t, completions)

	// Next tick: overlay torn down, completion reported.
	h.host.Step()
	require.False(t, rec.ShowLayer)
	require.True(t, rec.HideView)
	require.Equal(t, []bool{true}, completions, "completion fires exactly once with true")
}

func TestCoordinator_ReverseSequence(t *testing.T) {
	h := newHarness(t, WithArmDelay(0))
	src := NewRect(0, 0, 10, 10)
	dst := NewRect(100, 40, 60, 60)

	h.publish(t, "card1", &src, &dst)
	var completions []bool
	h.c.SetActive("card1", h.ns, true, "proxy",
		WithAnimation(AnimationSpec{Duration: 50 * time.Millisecond}),
		WithCompletion(func(forward bool) { completions = append(completions, forward) }),
	)
	h.host.Drain()
	rec := h.store.Lookup("card1", h.ns)
	require.True(t, rec.HideView)

	h.c.SetActive("card1", h.ns, false, nil)
	require.False(t, rec.HideView, "destination re-hides before the overlay reappears")
	require.True(t, rec.ShowLayer)

	// Next tick the reverse animation starts.
	h.host.Step()
	require.False(t, rec.AnimateView)
	require.Len(t, h.host.Animations, 2)

	// Completion clears the record back to Idle.
	h.host.Step()
	require.False(t, rec.Initialized)
	require.False(t, rec.ShowLayer)
	require.Nil(t, rec.FloatingContent)
	require.Nil(t, rec.SourceAnchor)
	require.Nil(t, rec.DestinationAnchor)
	require.NotNil(t, rec.CachedSourceAnchor, "cached anchors retained")
	require.Equal(t, []bool{true, false}, completions)
}

func TestCoordinator_RoundTripRestoresIdleState(t *testing.T) {
	h := newHarness(t, WithArmDelay(0))

	rec := h.c.EnsureRegistered("card1", h.ns)
	before := *rec

	h.c.SetActive("card1", h.ns, true, "proxy",
		WithAnimation(AnimationSpec{Duration: 10 * time.Millisecond}),
		WithCompletion(func(bool) {}),
	)
	h.host.Drain()
	h.c.SetActive("card1", h.ns, false, nil)
	h.host.Drain()

	require.Equal(t, before, *rec, "round trip is field-for-field idempotent")
	require.Same(t, rec, h.store.Lookup("card1", h.ns), "record persists for cheap re-triggering")
}

func TestCoordinator_RetriggerRestartsAnimation(t *testing.T) {
	h := newHarness(t, WithArmDelay(0))
	spec := AnimationSpec{Duration: 100 * time.Millisecond}

	h.c.SetActive("card1", h.ns, true, "first", WithAnimation(spec))
	h.host.Advance(0)
	require.Len(t, h.host.Animations, 1)

	// Double trigger mid-animation: configuration re-applied, schedule
	// restarted. No dedup by design.
	h.c.SetActive("card1", h.ns, true, "second", WithAnimation(spec))
	h.host.Advance(0)
	require.Len(t, h.host.Animations, 2)

	rec := h.store.Lookup("card1", h.ns)
	require.Equal(t, "second", rec.FloatingContent)

	h.host.Drain()
	require.True(t, rec.HideView)
	require.False(t, rec.ShowLayer)
}

func TestCoordinator_ForwardThenImmediateReverse(t *testing.T) {
	h := newHarness(t)
	src := NewRect(0, 0, 10, 10)
	h.publish(t, "card1", &src, nil)

	var completions []bool
	h.c.SetActive("card1", h.ns, true, "proxy",
		WithAnimation(AnimationSpec{Duration: 80 * time.Millisecond}),
		WithCompletion(func(forward bool) { completions = append(completions, forward) }),
	)
	// Reverse lands before the forward animation was even armed.
	h.c.SetActive("card1", h.ns, false, nil)

	require.NotPanics(t, func() { h.host.Drain() })

	// Callbacks interleave in scheduling order; the record ends in a
	// consistent terminal state with the overlay down and exactly the
	// completions whose callbacks survived the interleave.
	rec := h.store.Lookup("card1", h.ns)
	require.False(t, rec.ShowLayer)
	require.False(t, rec.Initialized)
	require.Equal(t, []bool{false}, completions,
		"reverse completion ran; forward completion was cleared by the reset before its teardown tick")
}

func TestCoordinator_MissingDestinationIsDegradedNotFatal(t *testing.T) {
	h := newHarness(t, WithArmDelay(0))
	src := NewRect(0, 0, 10, 10)
	h.publish(t, "card1", &src, nil)

	h.c.SetActive("card1", h.ns, true, "proxy", WithAnimation(AnimationSpec{Duration: time.Millisecond}))
	rec := h.store.Lookup("card1", h.ns)

	overlay := NewOverlay(h.store)
	layers := overlay.Layers()
	require.Len(t, layers, 1)
	require.Equal(t, src, layers[0].Rect, "overlay holds at the source rectangle")

	// Even mid-animation there is nowhere to cut to; still the source.
	h.host.Advance(0)
	require.True(t, rec.AnimateView)
	layers = overlay.Layers()
	require.Equal(t, src, layers[0].Rect)
}

func TestCoordinator_TransferActive(t *testing.T) {
	h := newHarness(t, WithArmDelay(0))
	src := NewRect(0, 0, 10, 10)
	dst := NewRect(100, 0, 50, 50)
	h.publish(t, "item5", &src, &dst)

	h.c.SetActive("item5", h.ns, true, "detail", WithAnimation(AnimationSpec{Duration: 100 * time.Millisecond}))
	h.host.Advance(0) // animation started, not yet complete

	h.c.TransferActive("item5", "item6", h.ns)

	from := h.store.Lookup("item5", h.ns)
	require.False(t, from.Initialized, "old identity fully cleared")
	require.False(t, from.ShowLayer)
	require.Nil(t, from.FloatingContent)

	to := h.store.Lookup("item6", h.ns)
	require.NotNil(t, to)
	require.True(t, to.Initialized)
	require.True(t, to.AnimateView)
	require.True(t, to.HideView)
	require.False(t, to.ShowLayer, "post-forward-complete state, no replay")
	require.Equal(t, "detail", to.FloatingContent)
	require.Equal(t, dst, *to.DestinationAnchor)

	require.Len(t, h.host.Animations, 1, "no animation replay")
}

func TestCoordinator_TransferFromInactiveIsIgnored(t *testing.T) {
	h := newHarness(t)

	h.c.TransferActive("ghost", "item6", h.ns)
	require.Nil(t, h.store.Lookup("item6", h.ns), "nothing to transfer, nothing created")
}

type testItem struct {
	id ID
}

func (i testItem) PortalID() ID {
	return i.id
}

func TestItemTrigger_PresenceDrivesTransitions(t *testing.T) {
	h := newHarness(t, WithArmDelay(0))
	trigger := NewItemTrigger[testItem](h.c, h.ns)
	content := func(i testItem) any { return string(i.id) + "-proxy" }

	item := testItem{id: "photo1"}
	trigger.Set(&item, content, WithAnimation(AnimationSpec{Duration: 10 * time.Millisecond}))

	rec := h.store.Lookup("photo1", h.ns)
	require.NotNil(t, rec)
	require.True(t, rec.Initialized)
	require.Equal(t, "photo1-proxy", rec.FloatingContent)
	h.host.Drain()
	require.True(t, rec.HideView)

	// Swiping to the next item transfers instead of re-animating.
	next := testItem{id: "photo2"}
	trigger.Set(&next, content)
	require.False(t, rec.Initialized, "previous item cleared")
	to := h.store.Lookup("photo2", h.ns)
	require.True(t, to.Initialized)
	require.True(t, to.HideView)
	require.Equal(t, "photo2-proxy", to.FloatingContent)
	require.Len(t, h.host.Animations, 1, "transfer does not replay the animation")

	// Item disappearing tears the presented portal down.
	trigger.Set(nil, content)
	h.host.Drain()
	require.False(t, to.Initialized)

	// A second nil is a no-op.
	require.NotPanics(t, func() { trigger.Set(nil, content) })
}
