package main

import (
	"syscall/js"

	"github.com/seqsense/globeview/orient"
)

type panel struct {
	orb, app, overlay js.Value
}

func newPanel(doc js.Value) *panel {
	return &panel{
		orb:     doc.Call("getElementById", "orb-trigger"),
		app:     doc.Call("getElementById", "app-container"),
		overlay: doc.Call("getElementById", "returning-overlay"),
	}
}

func (p *panel) open() {
	if !p.orb.IsNull() {
		p.orb.Get("classList").Call("add", "fade-out")
	}
	if !p.app.IsNull() {
		p.app.Get("classList").Call("remove", "hidden")
	}
}

func (p *panel) close() {
	if !p.app.IsNull() {
		p.app.Get("classList").Call("add", "hidden")
	}
}

// setPhase is called on every transition phase change.
func (p *panel) setPhase(ph orient.TransitionPhase) {
	if ph == orient.PhaseIdle && !p.orb.IsNull() {
		p.orb.Get("classList").Call("remove", "fade-out")
	}
}

func (p *panel) setOverlay(alpha float64, visible bool) {
	if p.overlay.IsNull() {
		return
	}
	cl := p.overlay.Get("classList")
	if visible {
		cl.Call("remove", "hidden")
		cl.Call("add", "show")
	} else {
		cl.Call("remove", "show")
		cl.Call("add", "hidden")
	}
	p.overlay.Get("style").Set("opacity", alpha)
}

// bindPanel exports closeApp and listens to the orb trigger.
func bindPanel(p *panel, chOpen chan<- struct{}, chClose chan<- struct{}) {
	if !p.orb.IsNull() {
		addListener(p.orb, "click", true, func(e js.Value) {
			chOpen <- struct{}{}
		})
	}
	js.Global().Set("closeApp",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			go func() { chClose <- struct{}{} }()
			return nil
		}),
	)
}
