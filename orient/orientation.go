package orient

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// Orientation is the angular pose of the globe in radians.
// Yaw is never wrapped so that drift and return paths stay continuous.
type Orientation struct {
	Yaw, Pitch float64
}

// Matrix returns the rotation applied to the globe model,
// pitch about X after yaw about Y.
func (o Orientation) Matrix() mat.Mat4 {
	return mat.Rotate(1, 0, 0, float32(o.Pitch)).
		MulAffine(mat.Rotate(0, 1, 0, float32(o.Yaw)))
}

func (o Orientation) pursue(target Orientation, alpha, bias float64) Orientation {
	return Orientation{
		Yaw:   o.Yaw + (target.Yaw-o.Yaw)*alpha + bias,
		Pitch: o.Pitch + (target.Pitch-o.Pitch)*alpha,
	}
}

// spin advances the decorative layer and keeps both angles in [-pi, pi].
func (o Orientation) spin(dyaw, dpitch float64) Orientation {
	return Orientation{
		Yaw:   math.Remainder(o.Yaw+dyaw, 2*math.Pi),
		Pitch: math.Remainder(o.Pitch+dpitch, 2*math.Pi),
	}
}

type Mode int

const (
	ModeAutoDrift Mode = iota
	ModeDragging
	ModeReturning
)

func (m Mode) String() string {
	switch m {
	case ModeAutoDrift:
		return "auto_drift"
	case ModeDragging:
		return "dragging"
	case ModeReturning:
		return "returning"
	}
	return "unknown"
}

// TransitionPhase is the visual state of the return transition
// observed by the view layer.
type TransitionPhase int

const (
	PhaseIdle TransitionPhase = iota
	PhaseReturning
)

func (p TransitionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseReturning:
		return "returning"
	}
	return "unknown"
}

// Source is the kind of device generating drag events.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	}
	return "unknown"
}

type pointerSample struct {
	x, y float64
}

// Frame is the state handed to the renderer once per tick.
type Frame struct {
	Globe  Orientation
	Clouds Orientation
	Mode   Mode
	Phase  TransitionPhase
}
