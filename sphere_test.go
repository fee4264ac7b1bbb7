package main

import (
	"math"
	"testing"
)

func TestNewSpherePoints(t *testing.T) {
	testCases := map[string]struct {
		radius     float32
		nLat, nLon int
		points     int
		err        error
	}{
		"Globe": {
			radius: globeRadius, nLat: globeLatSteps, nLon: globeLonSteps,
			points: (globeLatSteps + 1) * globeLonSteps,
		},
		"Cloud": {
			radius: cloudRadius, nLat: cloudLatSteps, nLon: cloudLonSteps,
			points: (cloudLatSteps + 1) * cloudLonSteps,
		},
		"TooCoarse": {
			radius: 1, nLat: 1, nLon: 2,
			err: errSphereResolution,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			pp, err := newSpherePoints(tt.radius, tt.nLat, tt.nLon)
			if err != tt.err {
				t.Fatalf("Expected error: %v, got: %v", tt.err, err)
			}
			if err != nil {
				return
			}
			if pp.Points != tt.points {
				t.Fatalf("Number of points must be %d, got: %d", tt.points, pp.Points)
			}
			if len(pp.Data) != tt.points*12 {
				t.Fatalf("Data size must be %d, got: %d", tt.points*12, len(pp.Data))
			}
			it, err := pp.Vec3Iterator()
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < pp.Points; i++ {
				r := it.Vec3().Norm()
				if math.Abs(float64(r-tt.radius)) > 1e-5 {
					t.Fatalf("Point %d must be on the sphere, expected: %f, got: %f", i, tt.radius, r)
				}
				it.Incr()
			}
		})
	}
}
