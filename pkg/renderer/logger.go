package renderer

import (
	"log"

	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultLogger implements core.Logger with the standard log package
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
