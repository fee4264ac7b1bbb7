package orient

import (
	"math"
	"time"
)

// ReturnPlan is the fixed trajectory of one return transition.
type ReturnPlan struct {
	StartYaw, StartPitch float64
	FinalYaw, FinalPitch float64
	StartTime            time.Time
	Duration             time.Duration
}

// Ease is the raised-cosine ease-in-out curve on [0, 1].
func Ease(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}

// NearestYaw returns the representative of target, modulo 2*pi,
// closest to current.
func NearestYaw(current, target float64) float64 {
	cycles := math.Round((current - target) / (2 * math.Pi))
	return target + cycles*2*math.Pi
}

// PlanReturn computes the trajectory from cur to home.
// When cur is already within eps of home on both axes, one full extra
// revolution is added so that the return is always visible as a spin.
func PlanReturn(cur, home Orientation, now time.Time, d time.Duration, eps float64) ReturnPlan {
	finalYaw := NearestYaw(cur.Yaw, home.Yaw)
	if math.Abs(finalYaw-cur.Yaw) < eps && math.Abs(home.Pitch-cur.Pitch) < eps {
		finalYaw += 2 * math.Pi
	}
	return ReturnPlan{
		StartYaw:   cur.Yaw,
		StartPitch: cur.Pitch,
		FinalYaw:   finalYaw,
		FinalPitch: home.Pitch,
		StartTime:  now,
		Duration:   d,
	}
}

// Progress returns the linear progress at now, clamped to [0, 1].
func (p ReturnPlan) Progress(now time.Time) float64 {
	if p.Duration <= 0 {
		return 1
	}
	r := float64(now.Sub(p.StartTime)) / float64(p.Duration)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// At returns the eased orientation at the given linear progress.
func (p ReturnPlan) At(progress float64) Orientation {
	e := Ease(progress)
	return Orientation{
		Yaw:   p.StartYaw + (p.FinalYaw-p.StartYaw)*e,
		Pitch: p.StartPitch + (p.FinalPitch-p.StartPitch)*e,
	}
}

func (p ReturnPlan) Final() Orientation {
	return Orientation{Yaw: p.FinalYaw, Pitch: p.FinalPitch}
}
