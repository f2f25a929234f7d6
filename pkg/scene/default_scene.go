package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// NewDefaultScene creates the two-sphere scene: a large white sphere straight
// ahead and a small red sphere in front of its upper-right quadrant
func NewDefaultScene() *Scene {
	s := New()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 5), 3))
	s.Add(geometry.NewSphere(core.NewVec3(1, 1, 3), 1).WithColor(core.Red))
	return s
}
