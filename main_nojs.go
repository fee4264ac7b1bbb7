//go:build !js

package main

import (
	"fortio.org/log"
)

func main() {
	log.Fatalf("globeview runs in the browser; build it with GOOS=js GOARCH=wasm and serve it with examples/serve")
}
