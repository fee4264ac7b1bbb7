package orient

import (
	"errors"
	"time"
)

const (
	DefaultHomeLongitude     = 121.5
	DefaultReferenceAngle    = 4.712
	DefaultPitch             = 0.4
	DefaultLatitudeCutoff    = 20.0
	DefaultSmoothing         = 0.05
	DefaultForwardBias       = 0.0002
	DefaultMouseSensitivity  = 0.005
	DefaultTouchSensitivity  = 0.008
	DefaultReturnDuration    = 2 * time.Second
	DefaultHomecomingEpsilon = 0.01
	DefaultCloudSpinYaw      = 0.0004
	DefaultCloudSpinPitch    = 0.0001
)

var (
	errSmoothing      = errors.New("smoothing must be in (0, 1]")
	errSensitivity    = errors.New("sensitivity must be >0")
	errReturnDuration = errors.New("return duration must be >0")
	errEpsilon        = errors.New("homecoming epsilon must be >=0")
)

type Config struct {
	// HomeLongitude is the meridian in degrees the globe faces
	// until a geolocation result arrives.
	HomeLongitude  float64 `yaml:"home_longitude"`
	ReferenceAngle float64 `yaml:"reference_angle"`
	DefaultPitch   float64 `yaml:"default_pitch"`
	LatitudeCutoff float64 `yaml:"latitude_cutoff"`

	Smoothing   float64 `yaml:"smoothing"`
	ForwardBias float64 `yaml:"forward_bias"`

	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	TouchSensitivity float64 `yaml:"touch_sensitivity"`

	ReturnDuration    time.Duration `yaml:"return_duration"`
	HomecomingEpsilon float64       `yaml:"homecoming_epsilon"`

	CloudSpinYaw   float64 `yaml:"cloud_spin_yaw"`
	CloudSpinPitch float64 `yaml:"cloud_spin_pitch"`
}

func DefaultConfig() Config {
	return Config{
		HomeLongitude:     DefaultHomeLongitude,
		ReferenceAngle:    DefaultReferenceAngle,
		DefaultPitch:      DefaultPitch,
		LatitudeCutoff:    DefaultLatitudeCutoff,
		Smoothing:         DefaultSmoothing,
		ForwardBias:       DefaultForwardBias,
		MouseSensitivity:  DefaultMouseSensitivity,
		TouchSensitivity:  DefaultTouchSensitivity,
		ReturnDuration:    DefaultReturnDuration,
		HomecomingEpsilon: DefaultHomecomingEpsilon,
		CloudSpinYaw:      DefaultCloudSpinYaw,
		CloudSpinPitch:    DefaultCloudSpinPitch,
	}
}

func (c Config) Validate() error {
	if c.Smoothing <= 0 || 1 < c.Smoothing {
		return errSmoothing
	}
	if c.MouseSensitivity <= 0 || c.TouchSensitivity <= 0 {
		return errSensitivity
	}
	if c.ReturnDuration <= 0 {
		return errReturnDuration
	}
	if c.HomecomingEpsilon < 0 {
		return errEpsilon
	}
	return nil
}

func (c Config) sensitivity(src Source) float64 {
	if src == SourceTouch {
		return c.TouchSensitivity
	}
	return c.MouseSensitivity
}
