package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-raycaster/pkg/core"
)

// ErrInvalidConfig reports a render configuration that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width      int        // Image width in pixels
	Height     int        // Image height in pixels
	Eye        core.Vec3  // Position of the viewer
	PlaneDepth float64    // Z of the projection plane spanning (-1,-1) to (1,1)
	Background core.Color // Color of pixels whose ray hits nothing
	NumWorkers int        // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns a 400x400 render from the origin onto the plane z=1
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Eye:        core.NewVec3(0, 0, 0),
		PlaneDepth: 1,
		Background: core.Black,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Validate checks that every pixel gets a well-defined ray
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	// A plane at or behind the eye can produce zero-length ray directions
	if !(c.PlaneDepth > c.Eye.Z) {
		return fmt.Errorf("%w: projection plane z=%g is not in front of eye %v", ErrInvalidConfig, c.PlaneDepth, c.Eye)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

func (c Config) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
