package main

import (
	"time"

	"github.com/seqsense/globeview/orient"
)

// frozenClock never advances and never fires its timers.
type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time { return c.now }

func (c frozenClock) AfterFunc(time.Duration, func()) orient.Timer { return frozenTimer{} }

type frozenTimer struct{}

func (frozenTimer) Stop() bool { return true }
