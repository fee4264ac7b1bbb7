package main

import (
	"fortio.org/log"
	webgl "github.com/seqsense/webgl-go"
)

func showDebugInfo(gl *webgl.WebGL) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("Failed to get debug info: %v", r)
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		log.Infof("GPU info: hidden by the browser privacy setting")
		return
	}
	log.Infof("GPU: %s %s",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	)
	log.Debugf("Max point size: %v",
		gl.GetParameter(gl.JS().Get("ALIASED_POINT_SIZE_RANGE").Int()),
	)
}
