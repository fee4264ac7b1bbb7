package main

import (
	"syscall/js"

	"github.com/seqsense/globeview/orient"
)

func addListener(target js.Value, name string, passive bool, cb func(e js.Value)) js.Func {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb(args[0])
		return nil
	})
	target.Call("addEventListener", name, fn, map[string]interface{}{
		"passive": passive,
	})
	return fn
}

func mouseEvent(a pointerAction, e js.Value) pointerEvent {
	return pointerEvent{
		action: a,
		source: orient.SourceMouse,
		x:      e.Get("clientX").Float(),
		y:      e.Get("clientY").Float(),
		button: e.Get("button").Int(),
	}
}

func touchEvent(a pointerAction, e js.Value) pointerEvent {
	touches := e.Get("touches")
	pe := pointerEvent{
		action:  a,
		source:  orient.SourceTouch,
		touches: touches.Length(),
	}
	if pe.touches > 0 {
		t := touches.Index(0)
		pe.x = t.Get("clientX").Float()
		pe.y = t.Get("clientY").Float()
	}
	return pe
}

// bindPointerEvents starts drags on the globe container and tracks them on
// the whole document, so a drag released outside the globe still ends.
func bindPointerEvents(container, doc js.Value, dragging func() bool, ch chan<- pointerEvent) {
	addListener(container, "mousedown", true, func(e js.Value) {
		ch <- mouseEvent(pointerDown, e)
	})
	addListener(doc, "mousemove", true, func(e js.Value) {
		if dragging() {
			ch <- mouseEvent(pointerMove, e)
		}
	})
	addListener(doc, "mouseup", true, func(e js.Value) {
		ch <- mouseEvent(pointerUp, e)
	})
	addListener(container, "touchstart", false, func(e js.Value) {
		if e.Get("touches").Length() == 1 {
			e.Call("preventDefault")
		}
		ch <- touchEvent(pointerDown, e)
	})
	addListener(doc, "touchmove", false, func(e js.Value) {
		if !dragging() {
			return
		}
		e.Call("preventDefault")
		ch <- touchEvent(pointerMove, e)
	})
	addListener(doc, "touchend", true, func(e js.Value) {
		ch <- touchEvent(pointerUp, e)
	})
	addListener(doc, "touchcancel", true, func(e js.Value) {
		ch <- touchEvent(pointerUp, e)
	})
}
