package vg

import "errors"

// Sentinel errors returned by the canvas. Wrap-aware callers match
// them with errors.Is.
var (
	// ErrInvalidDevicePixelRatio reports a non-positive device pixel
	// ratio passed to NewCanvas or SetDevicePixelRatio.
	ErrInvalidDevicePixelRatio = errors.New("vg: device pixel ratio must be positive")

	// ErrNoTessellator reports a Fill on a canvas created without
	// WithTessellator.
	ErrNoTessellator = errors.New("vg: no tessellator configured")

	// ErrTextureNotFound reports a texture handle unknown to the
	// provider, typically a handle from a previous provider instance.
	ErrTextureNotFound = errors.New("vg: texture not found")
)
