package main

import (
	"errors"
	"syscall/js"
)

var errContextLostEvent = errors.New("received context lost event")

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// consoleResult converts a console output to the value returned to JS.
func consoleResult(out string, err error) interface{} {
	if err != nil {
		return errorToJS(err)
	}
	return out
}
