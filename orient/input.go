package orient

import (
	"fortio.org/log"
)

// OnDragStart begins a manual drag at (x, y).
// It is ignored while returning.
func (c *Controller) OnDragStart(src Source, x, y float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeReturning {
		return false
	}
	c.mode = ModeDragging
	c.pointer = pointerSample{x: x, y: y}
	log.Debugf("Drag started by %s at (%.0f, %.0f)", src, x, y)
	return true
}

// OnDragMove rotates the globe by the pointer motion since the last event.
func (c *Controller) OnDragMove(src Source, x, y float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeDragging {
		return false
	}
	k := c.cfg.sensitivity(src)
	dx, dy := x-c.pointer.x, y-c.pointer.y
	c.set(Orientation{
		Yaw:   c.orientation.Yaw + dx*k,
		Pitch: c.orientation.Pitch + dy*k,
	})
	c.pointer = pointerSample{x: x, y: y}
	return true
}

// OnDragEnd hands the globe back to auto-drift without moving it.
func (c *Controller) OnDragEnd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeDragging {
		return false
	}
	c.mode = ModeAutoDrift
	log.Debugf("Drag ended at yaw %.3f pitch %.3f", c.orientation.Yaw, c.orientation.Pitch)
	return true
}
