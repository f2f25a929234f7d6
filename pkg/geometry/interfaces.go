package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Surface is anything a ray can be intersected with.
// Intersect returns the parametric distance t of the nearest intersection
// along the ray, or ok=false if the ray misses.
type Surface interface {
	Intersect(ray core.Ray) (t float64, ok bool)
	Color() core.Color
}
