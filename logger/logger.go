// Package logger builds the loggers shared by the window host, the headless
// runner and the profiler. Every line carries the component name, UTC
// microsecond timestamps and goes to stdout.
package logger

import (
	"log"
	"os"
)

// Component names used across polyfall
const (
	Game     = "game"
	Headless = "headless"
	Profiler = "profiler"
)

const flags = log.LstdFlags | log.Lmicroseconds | log.LUTC

// Logger is the logger type handed to components.
type Logger = log.Logger

// New returns a logger whose lines start with "[component] ".
func New(component string) *Logger {
	return log.New(os.Stdout, "["+component+"] ", flags)
}
