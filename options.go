// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

// ContextOption configures a Context during creation, following the
// teacher's functional-options idiom (github.com/gogpu/gg's
// ContextOption/contextOptions pair).
//
// Example:
//
//	ctx := srp.NewContext(
//		srp.WithCullFace(srp.CullBack),
//		srp.WithFrontFace(srp.FrontFaceCCW),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	messageFunc       MessageFunc
	messageUserData   any
	interpolationMode InterpolationMode
	frontFace         FrontFace
	cullFace          CullFace
	pointSize         float64
	arenaPageHint     int
}

// defaultOptions returns the default context configuration (§3):
// perspective-correct interpolation, CCW front faces, no culling, a
// 1-pixel point size.
func defaultOptions() contextOptions {
	return contextOptions{
		messageFunc:       defaultMessageFunc,
		interpolationMode: InterpolationPerspective,
		frontFace:         FrontFaceCCW,
		cullFace:          CullNone,
		pointSize:         1.0,
	}
}

// WithMessageFunc installs the diagnostic callback (§6, §7). Passing nil
// silences diagnostics entirely (no default logging).
func WithMessageFunc(fn MessageFunc, userData any) ContextOption {
	return func(o *contextOptions) {
		o.messageFunc = fn
		o.messageUserData = userData
	}
}

// WithInterpolationMode selects affine or perspective-correct attribute
// interpolation (§4.8).
func WithInterpolationMode(mode InterpolationMode) ContextOption {
	return func(o *contextOptions) {
		o.interpolationMode = mode
	}
}

// WithFrontFace selects which winding order is considered front-facing
// (§4.7).
func WithFrontFace(ff FrontFace) ContextOption {
	return func(o *contextOptions) {
		o.frontFace = ff
	}
}

// WithCullFace selects which facing(s) are discarded during triangle
// setup (§4.7).
func WithCullFace(cf CullFace) ContextOption {
	return func(o *contextOptions) {
		o.cullFace = cf
	}
}

// WithPointSize sets the side length, in pixels, of the square each
// POINTS vertex rasterizes to (§4.9).
func WithPointSize(size float64) ContextOption {
	return func(o *contextOptions) {
		o.pointSize = size
	}
}

// WithArenaPageHint sizes the first page of the context's per-draw
// arena (§4.1). Most callers should leave this at the default.
func WithArenaPageHint(bytes int) ContextOption {
	return func(o *contextOptions) {
		o.arenaPageHint = bytes
	}
}
