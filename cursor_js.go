package main

import (
	"syscall/js"
)

func setCursor(el js.Value, c cursor) {
	el.Get("style").Set("cursor", string(c))
}
