// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "github.com/gogpu/srp/internal/arena"

// InterpolationMode selects how triangle attributes are interpolated
// across a fragment (§4.8).
type InterpolationMode int

const (
	InterpolationPerspective InterpolationMode = iota
	InterpolationAffine
)

func (m InterpolationMode) String() string {
	if m == InterpolationAffine {
		return "affine"
	}
	return "perspective"
}

// FrontFace selects which winding order is considered front-facing
// (§4.7).
type FrontFace int

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

func (f FrontFace) String() string {
	if f == FrontFaceCW {
		return "cw"
	}
	return "ccw"
}

// CullFace selects which facing(s) triangle setup discards (§4.7).
type CullFace int

const (
	CullNone CullFace = iota
	CullFront
	CullBack
	CullFrontAndBack
)

func (c CullFace) String() string {
	switch c {
	case CullFront:
		return "front"
	case CullBack:
		return "back"
	case CullFrontAndBack:
		return "front-and-back"
	default:
		return "none"
	}
}

// Context holds the process-wide pipeline state (§3): the diagnostic
// callback, the configurable draw parameters, and the per-draw arena.
// The package assumes exactly one active Context at a time (§5);
// concurrent draws through the same Context from multiple goroutines
// are not supported.
type Context struct {
	messageFunc     MessageFunc
	messageUserData any

	interpolationMode InterpolationMode
	frontFace         FrontFace
	cullFace          CullFace
	pointSize         float64

	arena *arena.Arena
}

// NewContext creates a Context ready for its first draw. opts apply in
// order over the defaults from defaultOptions (§3).
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		messageFunc:       o.messageFunc,
		messageUserData:   o.messageUserData,
		interpolationMode: o.interpolationMode,
		frontFace:         o.frontFace,
		cullFace:          o.cullFace,
		pointSize:         o.pointSize,
		arena:             arena.New(o.arenaPageHint),
	}
}

// InterpolationMode returns the context's current interpolation mode.
func (c *Context) InterpolationMode() InterpolationMode { return c.interpolationMode }

// SetInterpolationMode configures affine vs. perspective-correct
// interpolation for subsequent draws (§4.8).
func (c *Context) SetInterpolationMode(mode InterpolationMode) { c.interpolationMode = mode }

// FrontFace returns the context's current front-face winding.
func (c *Context) FrontFace() FrontFace { return c.frontFace }

// SetFrontFace configures which winding order is front-facing for
// subsequent draws (§4.7).
func (c *Context) SetFrontFace(ff FrontFace) { c.frontFace = ff }

// CullFace returns the context's current cull-face setting.
func (c *Context) CullFace() CullFace { return c.cullFace }

// SetCullFace configures which facing(s) are discarded for subsequent
// draws (§4.7).
func (c *Context) SetCullFace(cf CullFace) { c.cullFace = cf }

// PointSize returns the context's current point size in pixels.
func (c *Context) PointSize() float64 { return c.pointSize }

// SetPointSize configures the side length of the square rasterized for
// POINTS primitives (§4.9). Values <= 0 cause points to rasterize no
// fragments.
func (c *Context) SetPointSize(size float64) { c.pointSize = size }

// SetMessageFunc installs the diagnostic callback used for subsequent
// draws (§6, §7). Passing nil silences diagnostics.
func (c *Context) SetMessageFunc(fn MessageFunc, userData any) {
	c.messageFunc = fn
	c.messageUserData = userData
}

// resetArena discards all per-draw allocations (§4.1, §4.10: "At the end
// of the draw, the arena is reset").
func (c *Context) resetArena() { c.arena.Reset() }
