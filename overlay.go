package main

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/seqsense/globeview/orient"
)

const (
	overlayFrequency = 6.0
	overlayDamping   = 1.0

	// Frame gaps outside this range come from a hidden tab or a clock hiccup.
	minFrameDelta     = time.Millisecond
	maxFrameDelta     = 100 * time.Millisecond
	defaultFrameDelta = time.Second / 60
)

// overlay is the "returning home" veil shown while a return is running.
// Its opacity follows the transition phase through a critically damped spring
// integrated over the real frame interval, so the fade takes the same time
// at any display refresh rate.
type overlay struct {
	spring   harmonica.Spring
	delta    time.Duration
	alpha    float64
	velocity float64
	target   float64
}

func newOverlay() *overlay {
	return &overlay{}
}

func (o *overlay) SetPhase(p orient.TransitionPhase) {
	switch p {
	case orient.PhaseReturning:
		o.target = 1
	default:
		o.target = 0
	}
}

// Step advances the fade by dt and returns the opacity.
func (o *overlay) Step(dt time.Duration) float64 {
	switch {
	case dt <= 0:
		dt = defaultFrameDelta
	case dt < minFrameDelta:
		dt = minFrameDelta
	case dt > maxFrameDelta:
		dt = maxFrameDelta
	}
	if dt != o.delta {
		o.spring = harmonica.NewSpring(dt.Seconds(), overlayFrequency, overlayDamping)
		o.delta = dt
	}
	o.alpha, o.velocity = o.spring.Update(o.alpha, o.velocity, o.target)
	switch {
	case o.alpha < 0:
		o.alpha = 0
	case o.alpha > 1:
		o.alpha = 1
	}
	return o.alpha
}

// Visible reports whether the overlay needs to be in the layout at all.
func (o *overlay) Visible() bool {
	return o.target > 0 || o.alpha > 0.01
}

// frameClock turns requestAnimationFrame timestamps into frame intervals.
type frameClock struct {
	last float64
}

// delta returns the interval since the previous timestamp in milliseconds.
// The first frame reports zero.
func (c *frameClock) delta(ts float64) time.Duration {
	if c.last == 0 || ts < c.last {
		c.last = ts
		return 0
	}
	d := time.Duration((ts - c.last) * float64(time.Millisecond))
	c.last = ts
	return d
}
