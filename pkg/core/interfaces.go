package core

import "errors"

// ErrInvalidGeometry reports a degenerate vector or shape parameter
var ErrInvalidGeometry = errors.New("invalid geometry")

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

// Printf does nothing
func (NopLogger) Printf(string, ...interface{}) {}
