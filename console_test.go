package main

import (
	"testing"

	"github.com/seqsense/globeview/orient"
)

func TestConsole(t *testing.T) {
	newConsole := func() *console {
		return &console{ctl: orient.NewController(orient.DefaultConfig(), nil)}
	}

	testCases := map[string]struct {
		pre      []string
		line     string
		expected string
		err      bool
	}{
		"Empty": {
			line: "", expected: "",
		},
		"Orientation": {
			line: "orientation", expected: "2.591 0.400",
		},
		"DriftTarget": {
			line: "drift_target", expected: "2.591 0.400",
		},
		"Mode": {
			line: "mode", expected: "0.000",
		},
		"Locate": {
			line: "locate 0 51.5", expected: "4.712 0.400",
		},
		"LocateTwice": {
			pre:  []string{"locate 0 51.5"},
			line: "locate 10 51.5", err: true,
		},
		"ReturnHome": {
			line: "return_home", expected: "8.875 0.400",
		},
		"ModeReturning": {
			pre:  []string{"return_home"},
			line: "mode", expected: "2.000",
		},
		"PhaseReturning": {
			pre:  []string{"return_home"},
			line: "phase", expected: "1.000",
		},
		"ReturnTwice": {
			pre:  []string{"return_home"},
			line: "return_home", err: true,
		},
		"Plan": {
			pre:  []string{"return_home"},
			line: "plan", expected: "2.591 0.400 8.875 0.400 2.000",
		},
		"NoPlan": {
			line: "plan", err: true,
		},
		"Ease": {
			line: "ease 0.5", expected: "0.500",
		},
		"Cloud": {
			line: "cloud", expected: "0.000 0.000",
		},
		"InvalidCommand": {
			line: "rotate", err: true,
		},
		"InvalidNumber": {
			line: "ease half", err: true,
		},
		"ArgumentNumber": {
			line: "orientation 1", err: true,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := newConsole()
			for _, l := range tt.pre {
				if _, err := c.Run(l); err != nil {
					t.Fatal(err)
				}
			}
			out, err := c.Run(tt.line)
			if tt.err {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.expected {
				t.Errorf("Expected: %q, got: %q", tt.expected, out)
			}
		})
	}
}
