package main

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/globeview/orient"
)

func TestView_Resize(t *testing.T) {
	v := newView()
	if !v.resize(640, 480) {
		t.Fatal("First resize must update the projection")
	}
	p := v.projection
	if v.resize(640, 480) {
		t.Error("Resize to the same size must be ignored")
	}
	if v.resize(640, 0) {
		t.Error("Resize to a collapsed canvas must be ignored")
	}
	if !v.resize(480, 480) {
		t.Fatal("Resize to a new size must update the projection")
	}
	if v.projection == p {
		t.Error("Projection must depend on the aspect ratio")
	}
}

func TestView_ModelView(t *testing.T) {
	v := newView()
	testCases := map[string]struct {
		o        orient.Orientation
		in       mat.Vec3
		expected mat.Vec3
	}{
		"Center": {
			in:       mat.Vec3{0, 0, 0},
			expected: mat.Vec3{0, 0, -defaultDistance},
		},
		"FrontSurface": {
			in:       mat.Vec3{0, 0, 1},
			expected: mat.Vec3{0, 0, 1 - defaultDistance},
		},
		"HalfTurn": {
			o:        orient.Orientation{Yaw: math.Pi},
			in:       mat.Vec3{0, 0, 1},
			expected: mat.Vec3{0, 0, -1 - defaultDistance},
		},
		"Upside": {
			o:        orient.Orientation{Yaw: 1.2, Pitch: math.Pi},
			in:       mat.Vec3{0, 1, 0},
			expected: mat.Vec3{0, -1, -defaultDistance},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := v.modelView(tt.o).TransformAffine(tt.in)
			if out.Sub(tt.expected).Norm() > 1e-5 {
				t.Errorf("Expected: %v, got: %v", tt.expected, out)
			}
		})
	}
}

func TestView_CloudModelView(t *testing.T) {
	v := newView()
	f := orient.Frame{Globe: orient.Orientation{Yaw: 0.3, Pitch: 0.2}}
	in := mat.Vec3{0.1, 0.5, 0.8}

	expected := v.modelView(f.Globe).TransformAffine(in)
	if out := v.cloudModelView(f).TransformAffine(in); out.Sub(expected).Norm() > 1e-5 {
		t.Errorf("Unrotated clouds must follow the globe, expected: %v, got: %v", expected, out)
	}

	f.Clouds = orient.Orientation{Yaw: math.Pi}
	pole := mat.Vec3{0, 1, 0}
	expected = v.modelView(f.Globe).TransformAffine(pole)
	if out := v.cloudModelView(f).TransformAffine(pole); out.Sub(expected).Norm() > 1e-5 {
		t.Errorf("Cloud spin must keep the pole, expected: %v, got: %v", expected, out)
	}
}
