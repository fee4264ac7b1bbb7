package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globeview/orient"
)

const (
	defaultFOV      = math.Pi / 4
	defaultDistance = 2.6
	nearClip        = 0.1
	farClip         = 100.0
)

type view struct {
	fov      float64
	distance float64

	width, height int
	projection    mat.Mat4
}

func newView() *view {
	return &view{
		fov:      defaultFOV,
		distance: defaultDistance,
	}
}

// resize updates the projection for the new canvas size.
// It returns false when nothing changed or the canvas is collapsed.
func (v *view) resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == v.width && height == v.height {
		return false
	}
	v.width, v.height = width, height
	v.projection = mat.Perspective(
		float32(v.fov),
		float32(width)/float32(height),
		nearClip, farClip,
	)
	return true
}

func (v *view) modelView(o orient.Orientation) mat.Mat4 {
	return mat.Translate(0, 0, -float32(v.distance)).MulAffine(o.Matrix())
}

// cloudModelView places the cloud layer inside the globe frame,
// so the layer follows the globe and spins on top of it.
func (v *view) cloudModelView(f orient.Frame) mat.Mat4 {
	return v.modelView(f.Globe).MulAffine(f.Clouds.Matrix())
}
