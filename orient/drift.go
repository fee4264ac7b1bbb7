package orient

import (
	"context"

	"fortio.org/log"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Locator performs a coarse, best-effort location lookup.
type Locator interface {
	Locate(ctx context.Context) (s2.LatLng, error)
}

// DriftYaw maps a longitude to the globe yaw that faces it.
func DriftYaw(referenceAngle float64, lng s1.Angle) float64 {
	return referenceAngle - lng.Radians()
}

// HomeTarget is the drift target used before any location is known.
func (c Config) HomeTarget() Orientation {
	return Orientation{
		Yaw:   DriftYaw(c.ReferenceAngle, s1.Angle(c.HomeLongitude)*s1.Degree),
		Pitch: c.DefaultPitch,
	}
}

// ResolveDriftTarget looks up the location in background and applies it
// to the drift target. Failures keep the current target and are not retried.
// The returned channel is closed when the lookup is over.
func (c *Controller) ResolveDriftTarget(ctx context.Context, l Locator) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ll, err := l.Locate(ctx)
		if err != nil {
			log.Warnf("Geolocation unavailable, keeping drift target: %v", err)
			return
		}
		c.OnGeolocationResult(ll)
	}()
	return done
}

// OnGeolocationResult overwrites the drift target from a location.
// Only the first valid result is applied, and nothing is applied after Close.
func (c *Controller) OnGeolocationResult(ll s2.LatLng) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		log.Debugf("Geolocation result after close ignored")
		return false
	}
	if c.located {
		return false
	}
	if !ll.IsValid() {
		log.Warnf("Invalid geolocation result ignored: %v", ll)
		return false
	}
	c.located = true
	c.target.Yaw = DriftYaw(c.cfg.ReferenceAngle, ll.Lng)
	if ll.Lat.Degrees() > c.cfg.LatitudeCutoff {
		c.target.Pitch = c.cfg.DefaultPitch
	}
	log.Infof("Drift target set from location %v: yaw=%.3f pitch=%.3f", ll, c.target.Yaw, c.target.Pitch)
	return true
}
