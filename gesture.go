package main

import (
	"time"

	"github.com/seqsense/globeview/orient"
)

type cursor string

const (
	cursorGrab     cursor = "grab"
	cursorGrabbing cursor = "grabbing"
	cursorWait     cursor = "progress"
)

type pointerAction int

const (
	pointerDown pointerAction = iota
	pointerMove
	pointerUp
)

type pointerEvent struct {
	action  pointerAction
	source  orient.Source
	x, y    float64
	button  int
	touches int
}

// gesture turns raw mouse and touch events into drag calls of the controller.
// Touch drags are accepted only with a single finger.
type gesture struct {
	ctl    *orient.Controller
	guard  clickGuard
	active bool
	source orient.Source
}

func newGesture(ctl *orient.Controller) *gesture {
	return &gesture{ctl: ctl}
}

func (g *gesture) accepts(e pointerEvent) bool {
	switch e.source {
	case orient.SourceMouse:
		return e.action != pointerDown || e.button == 0
	case orient.SourceTouch:
		return e.action == pointerUp || e.touches == 1
	}
	return false
}

func (g *gesture) handle(e pointerEvent, now time.Time) {
	if !g.accepts(e) {
		return
	}
	switch e.action {
	case pointerDown:
		if g.ctl.OnDragStart(e.source, e.x, e.y) {
			g.active = true
			g.source = e.source
			g.guard.Press(e.x, e.y)
		}
	case pointerMove:
		if !g.active || e.source != g.source {
			return
		}
		if g.ctl.OnDragMove(e.source, e.x, e.y) {
			g.guard.Track(e.x, e.y)
		}
	case pointerUp:
		if !g.active || e.source != g.source {
			return
		}
		g.active = false
		g.ctl.OnDragEnd()
		g.guard.Release(now)
	}
}

// click reports whether a click on the orb should open the panel.
func (g *gesture) click(now time.Time) bool {
	if !g.guard.Accept(now) {
		return false
	}
	g.ctl.OnOpenRequested()
	return true
}

func (g *gesture) cursor() cursor {
	switch g.ctl.Mode() {
	case orient.ModeDragging:
		return cursorGrabbing
	case orient.ModeReturning:
		return cursorWait
	}
	return cursorGrab
}
