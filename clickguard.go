package main

import (
	"math"
	"time"
)

const (
	// clickGuardDuration is how long after a drag release an orb click
	// is still attributed to the drag.
	clickGuardDuration = 100 * time.Millisecond
	// clickSlop is the pointer travel in CSS pixels below which a press
	// is still a tap; fingers jitter a few pixels on a tap.
	clickSlop = 6.0
)

// clickGuard tells a real orb click from the click the browser fires
// when a globe drag is released over the orb.
type clickGuard struct {
	x0, y0   float64
	pressed  bool
	dragged  bool
	releases time.Time
}

func (c *clickGuard) Press(x, y float64) {
	c.x0, c.y0 = x, y
	c.pressed = true
	c.dragged = false
}

func (c *clickGuard) Track(x, y float64) {
	if !c.dragged && math.Hypot(x-c.x0, y-c.y0) > clickSlop {
		c.dragged = true
	}
}

func (c *clickGuard) Release(now time.Time) {
	c.pressed = false
	if c.dragged {
		c.releases = now.Add(clickGuardDuration)
	}
}

// Accept reports whether a click at now opens the panel.
func (c *clickGuard) Accept(now time.Time) bool {
	switch {
	case !c.dragged:
		return true
	case c.pressed:
		return false
	}
	return !now.Before(c.releases)
}
