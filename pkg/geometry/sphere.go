package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Colour core.Color
}

// NewSphere creates a new white sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Colour: core.White,
	}
}

// WithColor returns a copy of the sphere with a different color
func (s *Sphere) WithColor(c core.Color) *Sphere {
	copied := *s
	copied.Colour = c
	return &copied
}

// Color returns the sphere's flat color
func (s *Sphere) Color() core.Color {
	return s.Colour
}

// Intersect tests if a ray intersects with the sphere using the geometric method.
// The near root is returned even when it is negative, which happens when the
// ray origin lies inside the sphere.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	v := s.Center.Subtract(ray.Origin)

	// Distance along the ray to the point closest to the center
	tca := v.Dot(ray.Direction)
	if tca < 0 {
		return 0, false
	}

	// Squared distance from the center to the ray line
	d2 := v.Dot(v) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	return tca - thc, true
}
