// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package srptime provides a fixed-timestep frame limiter, a small
// collaborator used by cmd/srpdemo to time its draw. Grounded on
// original_source/examples/utility/framelimiter.c's
// Init/Begin/End cycle, rewritten around time.Time/time.Sleep instead of
// timespec_get/thrd_sleep.
package srptime

import "time"

// Limiter paces a render loop to a target frame rate, matching the
// original's FrameLimiter struct.
type Limiter struct {
	targetFrameTime time.Duration
	last            time.Time
}

// NewLimiter creates a limiter targeting the given frames per second.
func NewLimiter(fps float64) *Limiter {
	return &Limiter{
		targetFrameTime: time.Duration(float64(time.Second) / fps),
		last:            time.Now(),
	}
}

// Begin marks the start of a frame, matching frameLimiterBegin.
func (l *Limiter) Begin() {
	l.last = time.Now()
}

// End sleeps off the remainder of the target frame time, if any, and
// returns the elapsed frame duration, matching frameLimiterEnd. The
// original approximates the returned delta as the target frame time
// after sleeping; the same approximation is kept here.
func (l *Limiter) End() time.Duration {
	dt := time.Since(l.last)
	sleepTime := l.targetFrameTime - dt
	if sleepTime > 0 {
		time.Sleep(sleepTime)
		dt = l.targetFrameTime
	}
	return dt
}
