package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	Colour core.Color
}

// NewPlane creates a new plane. The normal must be non-zero.
func NewPlane(point, normal core.Vec3, c core.Color) (*Plane, error) {
	n, err := normal.TryNormalize()
	if err != nil {
		return nil, err
	}
	return &Plane{Point: point, Normal: n, Colour: c}, nil
}

// Color returns the plane's flat color
func (p *Plane) Color() core.Color {
	return p.Colour
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return 0, false
	}
	return t, true
}
