package vg

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default canvas at 1:1 pixel ratio
//	c, err := vg.NewCanvas()
//
//	// HiDPI canvas with a plugged-in tessellator
//	c, err := vg.NewCanvas(
//	    vg.WithDevicePixelRatio(2),
//	    vg.WithTessellator(tess),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	devicePixelRatio float64
	tess             Tessellator
	edgeAA           bool
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		devicePixelRatio: 1,
		edgeAA:           true,
	}
}

// WithDevicePixelRatio sets the backing-store to canvas-unit scale.
// Pass the window's scale factor (2 on most HiDPI displays) so the
// anti-aliasing fringe stays exactly one device pixel wide.
// NewCanvas rejects non-positive values with ErrInvalidDevicePixelRatio.
func WithDevicePixelRatio(ratio float64) CanvasOption {
	return func(o *canvasOptions) {
		o.devicePixelRatio = ratio
	}
}

// WithTessellator plugs in a triangulator for Fill. Without one the
// canvas still strokes and fan-fills convex shapes, but Fill on
// arbitrary paths returns ErrNoTessellator.
func WithTessellator(t Tessellator) CanvasOption {
	return func(o *canvasOptions) {
		o.tess = t
	}
}

// WithEdgeAntiAlias toggles geometric edge anti-aliasing. On by
// default; turn it off when rendering into an MSAA target, where the
// fringe geometry would only add fill rate.
func WithEdgeAntiAlias(enabled bool) CanvasOption {
	return func(o *canvasOptions) {
		o.edgeAA = enabled
	}
}
