package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// DefaultMaxDistance bounds the nearest-hit search when a scene sets no limit
const DefaultMaxDistance = 1000.0

// noHitDistance is the largest distance that never counts as a hit.
// Near roots from rays starting inside a sphere are negative but still
// accepted while they stay above it.
const noHitDistance = -1.0

// Scene contains the ordered surfaces that rays are tested against
type Scene struct {
	Surfaces    []geometry.Surface // Objects in the scene, in insertion order
	MaxDistance float64            // Hits at or beyond this distance are ignored; 0 means DefaultMaxDistance
}

// New creates a scene from the given surfaces
func New(surfaces ...geometry.Surface) *Scene {
	return &Scene{Surfaces: surfaces}
}

// Add appends a surface to the scene
func (s *Scene) Add(surface geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surface)
}

// Nearest returns the color and distance of the closest surface hit by the ray.
// Surfaces are tested linearly in insertion order; on an exact tie the
// earlier surface wins.
func (s *Scene) Nearest(ray core.Ray) (core.Color, float64, bool) {
	closestSoFar := s.MaxDistance
	if closestSoFar <= 0 {
		closestSoFar = DefaultMaxDistance
	}

	var closest core.Color
	hitAnything := false

	for _, surface := range s.Surfaces {
		t, ok := surface.Intersect(ray)
		if ok && t > noHitDistance && t < closestSoFar {
			hitAnything = true
			closestSoFar = t
			closest = surface.Color()
		}
	}

	if !hitAnything {
		return core.Color{}, 0, false
	}
	return closest, closestSoFar, true
}

// ColorAt returns the color of the nearest hit, or background if nothing is hit
func (s *Scene) ColorAt(ray core.Ray, background core.Color) core.Color {
	if c, _, ok := s.Nearest(ray); ok {
		return c
	}
	return background
}
