package main

import (
	"errors"
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

const (
	globeRadius = 1.0
	cloudRadius = 1.015

	globeLatSteps = 90
	globeLonSteps = 180
	cloudLatSteps = 45
	cloudLonSteps = 90
)

var errSphereResolution = errors.New("sphere needs at least 2 latitude and 3 longitude steps")

func xyzHeader(n int) pc.PointCloudHeader {
	return pc.PointCloudHeader{
		Version: 0.7,
		Fields:  []string{"x", "y", "z"},
		Size:    []int{4, 4, 4},
		Type:    []string{"F", "F", "F"},
		Count:   []int{1, 1, 1},
		Width:   n,
		Height:  1,
	}
}

// newSpherePoints samples a latitude/longitude grid on the sphere.
// Y is the polar axis so that yaw spins the globe around its poles.
func newSpherePoints(radius float32, nLat, nLon int) (*pc.PointCloud, error) {
	if nLat < 2 || nLon < 3 {
		return nil, errSphereResolution
	}
	n := (nLat + 1) * nLon
	pp := &pc.PointCloud{
		PointCloudHeader: xyzHeader(n),
		Points:           n,
	}
	pp.Data = make([]byte, n*pp.Stride())

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for i := 0; i <= nLat; i++ {
		lat := math.Pi/2 - math.Pi*float64(i)/float64(nLat)
		sLat, cLat := math.Sincos(lat)
		for j := 0; j < nLon; j++ {
			sLon, cLon := math.Sincos(2 * math.Pi * float64(j) / float64(nLon))
			it.SetVec3(mat.Vec3{
				radius * float32(cLat*sLon),
				radius * float32(sLat),
				radius * float32(cLat*cLon),
			})
			it.Incr()
		}
	}
	return pp, nil
}
