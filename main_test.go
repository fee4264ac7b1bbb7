package main

import (
	"os"
	"testing"

	"fortio.org/log"
)

func TestMain(m *testing.M) {
	log.SetLogLevel(log.Warning)
	os.Exit(m.Run())
}
