package teahost

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	portal "github.com/grindlemire/go-portal"
)

// tick pins the host clock to base+offset, as the program loop would.
func tick(h *Host, base time.Time, offset time.Duration) {
	h.Update(TickMsg(base.Add(offset)))
}

func TestHost_ScheduleRunsOnNextTickNotInline(t *testing.T) {
	h := New()
	base := time.Unix(0, 0)
	tick(h, base, 0)

	var ran bool
	h.Schedule(0, func() { ran = true })
	require.False(t, ran, "zero delay still waits for a tick")

	tick(h, base, h.interval)
	require.True(t, ran)
}

func TestHost_ScheduleOrdersByDeadlineThenSubmission(t *testing.T) {
	h := New()
	base := time.Unix(0, 0)
	tick(h, base, 0)

	var ran []string
	h.Schedule(20*time.Millisecond, func() { ran = append(ran, "late") })
	h.Schedule(5*time.Millisecond, func() { ran = append(ran, "early1") })
	h.Schedule(5*time.Millisecond, func() { ran = append(ran, "early2") })

	tick(h, base, 50*time.Millisecond)
	require.Equal(t, []string{"early1", "early2", "late"}, ran)
}

func TestHost_ScheduledCallbackMayScheduleMore(t *testing.T) {
	h := New()
	base := time.Unix(0, 0)
	tick(h, base, 0)

	var ran []string
	h.Schedule(0, func() {
		ran = append(ran, "outer")
		h.Schedule(0, func() { ran = append(ran, "inner") })
	})

	tick(h, base, h.interval)
	require.Equal(t, []string{"outer", "inner"}, ran, "chained zero-delay work runs within the same tick")
}

func TestHost_AnimateAppliesNowCompletesOnSchedule(t *testing.T) {
	h := New()
	base := time.Unix(0, 0)
	tick(h, base, 0)

	var applied, done bool
	h.Animate(portal.AnimationSpec{Duration: 100 * time.Millisecond},
		func() { applied = true },
		func() { done = true },
	)
	require.True(t, applied)
	require.True(t, h.Animating())

	tick(h, base, 50*time.Millisecond)
	require.False(t, done, "halfway through")
	require.InDelta(t, 0.5, h.Progress(), 0.01, "ease-in-out crosses 0.5 at the midpoint")

	tick(h, base, 100*time.Millisecond)
	require.True(t, done)
	require.False(t, h.Animating())
	require.Equal(t, 1.0, h.Progress(), "idle progress parks at the target")
}

func TestHost_UpdateIgnoresOtherMessages(t *testing.T) {
	h := New()
	require.Nil(t, h.Update("not a tick"))
}

func TestEase_EndpointsAndBounds(t *testing.T) {
	curves := []portal.Curve{
		portal.CurveEaseInOut,
		portal.CurveLinear,
		portal.CurveEaseIn,
		portal.CurveEaseOut,
		portal.CurveSpring,
	}
	for _, c := range curves {
		require.InDelta(t, 0, ease(c, 0), 0.01)
		require.InDelta(t, 1, ease(c, 1), 0.01)
	}
}

func TestComposite_SplicesLayerIntoBase(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	out := Composite(base, []portal.Layer{{
		Kind: portal.LayerFloating,
		Rect: portal.NewRect(2, 1, 4, 3),
	}})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "..........", lines[0], "rows above the layer untouched")
	require.Equal(t, "..", lines[1][:2], "columns left of the layer untouched")
	require.Contains(t, lines[1], "┌──┐")
	require.Contains(t, lines[3], "└──┘")
}

func TestComposite_PadsRowsBelowBase(t *testing.T) {
	out := Composite("top", []portal.Layer{{
		Kind: portal.LayerFloating,
		Rect: portal.NewRect(0, 2, 3, 2),
	}})
	require.Len(t, strings.Split(out, "\n"), 4)
}

func TestRenderLayer_TooSmallRendersNothing(t *testing.T) {
	require.Empty(t, RenderLayer(portal.Layer{Rect: portal.NewRect(0, 0, 1, 1)}))
}
