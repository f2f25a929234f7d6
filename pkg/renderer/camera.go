package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Camera generates one ray per pixel through the projection plane
type Camera struct {
	eye   core.Vec3
	depth float64
	dx    float64 // Plane width covered by one pixel column
	dy    float64 // Plane height covered by one pixel row
}

// NewCamera creates a camera for a width x height grid
func NewCamera(config Config) *Camera {
	return &Camera{
		eye:   config.Eye,
		depth: config.PlaneDepth,
		dx:    2.0 / float64(config.Width),
		dy:    2.0 / float64(config.Height),
	}
}

// PlanePoint maps pixel (x, y) onto the projection plane
func (c *Camera) PlanePoint(x, y int) core.Vec3 {
	return core.NewVec3(-1+float64(x)*c.dx, -1+float64(y)*c.dy, c.depth)
}

// GetRay generates the ray from the eye through pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return core.NewRay(c.eye, c.PlanePoint(x, y).Subtract(c.eye))
}
