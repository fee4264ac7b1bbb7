package orient

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s2"
)

type dummyLocator struct {
	ll  s2.LatLng
	err error
}

func (l *dummyLocator) Locate(context.Context) (s2.LatLng, error) {
	return l.ll, l.err
}

func TestHomeTarget(t *testing.T) {
	o := DefaultConfig().HomeTarget()
	expected := 4.712 - 121.5*(math.Pi/180)
	if math.Abs(o.Yaw-expected) > tolerance {
		t.Errorf("Home yaw expected: %f, got: %f", expected, o.Yaw)
	}
	if o.Pitch != DefaultPitch {
		t.Errorf("Home pitch expected: %f, got: %f", DefaultPitch, o.Pitch)
	}
}

func TestOnGeolocationResult(t *testing.T) {
	testCases := map[string]struct {
		lat, lng float64
		applied  bool
		yaw      float64
		pitch    float64
		prepare  func(c *Controller)
	}{
		"North": {
			lat: 35.7, lng: 139.7, applied: true,
			yaw: 4.712 - 139.7*math.Pi/180, pitch: DefaultPitch,
		},
		"SouthKeepsPitch": {
			lat: -33.9, lng: 151.2, applied: true,
			yaw: 4.712 - 151.2*math.Pi/180, pitch: 0.1,
			prepare: func(c *Controller) { c.target.Pitch = 0.1 },
		},
		"BelowCutoffKeepsPitch": {
			lat: 19.9, lng: 0, applied: true,
			yaw: 4.712, pitch: 0.1,
			prepare: func(c *Controller) { c.target.Pitch = 0.1 },
		},
		"Invalid": {
			lat: 95, lng: 10, applied: false,
			yaw: DefaultConfig().HomeTarget().Yaw, pitch: DefaultPitch,
		},
		"AfterClose": {
			lat: 35.7, lng: 139.7, applied: false,
			yaw: DefaultConfig().HomeTarget().Yaw, pitch: DefaultPitch,
			prepare: func(c *Controller) { c.Close() },
		},
		"OnlyOnce": {
			lat: 35.7, lng: 139.7, applied: false,
			yaw: 4.712 - 2.3*math.Pi/180, pitch: DefaultPitch,
			prepare: func(c *Controller) {
				c.OnGeolocationResult(s2.LatLngFromDegrees(48.8, 2.3))
			},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, _ := newTestController(t)
			if tt.prepare != nil {
				tt.prepare(c)
			}
			o0 := c.Orientation()
			if ok := c.OnGeolocationResult(s2.LatLngFromDegrees(tt.lat, tt.lng)); ok != tt.applied {
				t.Fatalf("Applied expected: %v, got: %v", tt.applied, ok)
			}
			tg := c.DriftTarget()
			if math.Abs(tg.Yaw-tt.yaw) > 1e-6 || math.Abs(tg.Pitch-tt.pitch) > 1e-6 {
				t.Errorf("Drift target expected: (%f, %f), got: %v", tt.yaw, tt.pitch, tg)
			}
			if c.Orientation() != o0 || c.Mode() != ModeAutoDrift {
				t.Error("Geolocation must only update the drift target")
			}
		})
	}
}

func TestOnGeolocationResult_DuringReturn(t *testing.T) {
	c, _ := newTestController(t)
	c.OnCloseRequested()
	plan, _ := c.Plan()

	if !c.OnGeolocationResult(s2.LatLngFromDegrees(51.5, -0.1)) {
		t.Fatal("Geolocation must be applied during a return")
	}
	if p, _ := c.Plan(); p != plan {
		t.Error("Running plan must not change by a geolocation result")
	}
	if m := c.Mode(); m != ModeReturning {
		t.Errorf("Mode must stay %s, got: %s", ModeReturning, m)
	}
}

func TestResolveDriftTarget(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c, _ := newTestController(t)
		<-c.ResolveDriftTarget(context.Background(), &dummyLocator{ll: s2.LatLngFromDegrees(40.7, -74.0)})
		expected := 4.712 + 74.0*math.Pi/180
		if tg := c.DriftTarget(); math.Abs(tg.Yaw-expected) > 1e-6 {
			t.Errorf("Drift yaw expected: %f, got: %f", expected, tg.Yaw)
		}
	})
	t.Run("Failure", func(t *testing.T) {
		c, _ := newTestController(t)
		before := c.DriftTarget()
		<-c.ResolveDriftTarget(context.Background(), &dummyLocator{err: errors.New("offline")})
		if tg := c.DriftTarget(); tg != before {
			t.Errorf("Drift target must be kept on failure, expected: %v, got: %v", before, tg)
		}
	})
}
