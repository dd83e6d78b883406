// Package portal coordinates cross-view transitions: a single floating
// overlay travels between the on-screen rectangle of a "source" view
// and the rectangle of a "destination" view, then hands off to the
// real destination.
//
// The package owns the bookkeeping only: the record store, the anchor
// registry, the phase machine, and group fan-out. Layout, rendering,
// and the visual tween belong to the host UI framework, which plugs in
// through the Scheduler and Animator interfaces.
package portal
