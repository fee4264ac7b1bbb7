package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/seqsense/globeview/orient"
)

type console struct {
	ctl *orient.Controller
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

var consoleCommands = map[string]func(ctl *orient.Controller, args []float64) ([][]float64, error){
	"orientation": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		o := ctl.Orientation()
		return [][]float64{{o.Yaw, o.Pitch}}, nil
	},
	"drift_target": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		o := ctl.DriftTarget()
		return [][]float64{{o.Yaw, o.Pitch}}, nil
	},
	"cloud": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		o := ctl.Clouds()
		return [][]float64{{o.Yaw, o.Pitch}}, nil
	},
	"mode": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float64{{float64(ctl.Mode())}}, nil
	},
	"phase": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float64{{float64(ctl.Phase())}}, nil
	},
	"plan": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		p, ok := ctl.Plan()
		if !ok {
			return nil, errors.New("no return planned")
		}
		return [][]float64{{p.StartYaw, p.StartPitch, p.FinalYaw, p.FinalPitch, p.Duration.Seconds()}}, nil
	},
	"return_home": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		if !ctl.OnCloseRequested() {
			return nil, errors.New("return already running")
		}
		p, _ := ctl.Plan()
		return [][]float64{{p.FinalYaw, p.FinalPitch}}, nil
	},
	"locate": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 2 {
			return nil, errArgumentNumber
		}
		if !ctl.OnGeolocationResult(s2.LatLngFromDegrees(args[1], args[0])) {
			return nil, errors.New("location rejected")
		}
		o := ctl.DriftTarget()
		return [][]float64{{o.Yaw, o.Pitch}}, nil
	},
	"ease": func(ctl *orient.Controller, args []float64) ([][]float64, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		return [][]float64{{orient.Ease(args[0])}}, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, f)
	}
	res, err := fn(c.ctl, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(v, 'f', 3, 64))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
