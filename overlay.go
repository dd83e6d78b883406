package portal

import "github.com/grindlemire/go-portal/internal/geometry"

// LayerKind distinguishes floating layers from debug indicator layers.
type LayerKind int

const (
	// LayerFloating is the traveling proxy for an active transition.
	LayerFloating LayerKind = iota
	// LayerSourceIndicator outlines a registered source anchor
	// (debug indicators only).
	LayerSourceIndicator
	// LayerDestinationIndicator outlines a registered destination
	// anchor (debug indicators only).
	LayerDestinationIndicator
)

// Layer is one overlay for the host to draw this render pass, already
// positioned in the shared coordinate space.
type Layer struct {
	Kind      LayerKind
	ID        ID
	Namespace Namespace

	// Rect is the overlay's target rectangle. While the record is not
	// yet animating this is the source rectangle; once the forward
	// animation flips AnimateView it is the destination rectangle.
	// The hard cut is intentional: the visual tween between the two
	// comes from the host animating the flip, not from per-frame lerp
	// here.
	Rect Rect

	// Animating mirrors the record's AnimateView so hosts tweening
	// the cut themselves know which side Rect is on.
	Animating bool

	Corners  CornerRadii
	Rounding RoundingStyle
	Content  any
	Removal  Removal
}

// Interpolator computes the overlay rectangle from the raw
// source/destination pair, replacing the default hard cut. Extension
// point for hosts that drive their own interpolation.
type Interpolator func(src, dst Rect, animating bool) Rect

// Overlay computes floating layers from the record store. The host
// calls Layers once per render pass, after layout has settled, and
// draws the result above the regular tree.
type Overlay struct {
	store       *Store
	interpolate Interpolator
}

// OverlayOption configures an Overlay.
type OverlayOption func(*Overlay)

// WithInterpolator replaces the default hard-cut rectangle selection.
func WithInterpolator(fn Interpolator) OverlayOption {
	return func(o *Overlay) {
		o.interpolate = fn
	}
}

// NewOverlay creates an overlay renderer over the given store.
func NewOverlay(store *Store, opts ...OverlayOption) *Overlay {
	o := &Overlay{store: store}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Layers returns the layers to draw this pass, in record registration
// order. Floating layers come first, then debug indicators if the
// store has them enabled.
func (o *Overlay) Layers() []Layer {
	var layers []Layer
	for _, rec := range o.store.Records() {
		if !rec.ShowLayer {
			continue
		}
		layers = append(layers, o.floatingLayer(rec))
	}
	if o.store.debugIndicators {
		layers = append(layers, o.indicatorLayers()...)
	}
	return layers
}

func (o *Overlay) floatingLayer(rec *Record) Layer {
	src, srcOK := rec.SourceRect()
	dst, dstOK := rec.DestinationRect()

	var rect Rect
	switch {
	case o.interpolate != nil:
		rect = o.interpolate(src, dst, rec.AnimateView)
	case rec.AnimateView && dstOK:
		rect = dst
	case srcOK:
		// Not yet animating, or animating toward a destination that
		// never registered; either way the overlay holds at the
		// source rectangle.
		rect = src
	case dstOK:
		// No source was ever registered: pop in at the destination
		// rather than sliding. Degraded, not an error.
		rect = dst
	default:
		// Neither end known; a zero rectangle until an anchor lands.
		rect = geometry.Rect{}
	}

	layer := Layer{
		Kind:      LayerFloating,
		ID:        rec.ID,
		Namespace: rec.Namespace,
		Rect:      rect,
		Animating: rec.AnimateView,
		Content:   rec.FloatingContent,
		Removal:   rec.Removal,
	}
	if rec.Corners != nil {
		layer.Rounding = rec.Corners.Style
		if rec.AnimateView {
			layer.Corners = rec.Corners.Destination
		} else {
			layer.Corners = rec.Corners.Source
		}
	}
	return layer
}

// indicatorLayers outlines every live anchor in the scope. Presentation
// only; coordination logic never reads these.
func (o *Overlay) indicatorLayers() []Layer {
	var layers []Layer
	for _, rec := range o.store.Records() {
		if rec.SourceAnchor != nil {
			layers = append(layers, Layer{
				Kind:      LayerSourceIndicator,
				ID:        rec.ID,
				Namespace: rec.Namespace,
				Rect:      *rec.SourceAnchor,
			})
		}
		if rec.DestinationAnchor != nil {
			layers = append(layers, Layer{
				Kind:      LayerDestinationIndicator,
				ID:        rec.ID,
				Namespace: rec.Namespace,
				Rect:      *rec.DestinationAnchor,
			})
		}
	}
	return layers
}
