package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// File is the JSON form of a scene. Surfaces keep their order.
type File struct {
	MaxDistance float64       `json:"maxDistance,omitempty"`
	Surfaces    []SurfaceFile `json:"surfaces"`
}

// SurfaceFile describes one surface. Type is "sphere" or "plane".
type SurfaceFile struct {
	Type   string     `json:"type"`
	Center [3]float64 `json:"center"`           // sphere
	Radius float64    `json:"radius,omitempty"` // sphere
	Point  [3]float64 `json:"point"`            // plane
	Normal [3]float64 `json:"normal"`           // plane
	Color  *[3]uint8  `json:"color,omitempty"`  // white when omitted
}

// Build validates the file and constructs the scene
func (f File) Build() (*Scene, error) {
	s := &Scene{MaxDistance: f.MaxDistance}
	for i, sf := range f.Surfaces {
		surface, err := sf.Build()
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
		s.Add(surface)
	}
	return s, nil
}

// Build constructs the surface described by sf
func (sf SurfaceFile) Build() (geometry.Surface, error) {
	c := core.White
	if sf.Color != nil {
		c = core.NewColor(sf.Color[0], sf.Color[1], sf.Color[2])
	}

	switch sf.Type {
	case "sphere":
		if !(sf.Radius > 0) {
			return nil, fmt.Errorf("sphere radius %g: %w", sf.Radius, core.ErrInvalidGeometry)
		}
		return geometry.NewSphere(toVec3(sf.Center), sf.Radius).WithColor(c), nil
	case "plane":
		return geometry.NewPlane(toVec3(sf.Point), toVec3(sf.Normal), c)
	default:
		return nil, fmt.Errorf("unknown surface type %q", sf.Type)
	}
}

// Decode reads a JSON scene from r
func Decode(r io.Reader) (*Scene, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return f.Build()
}

// Load reads a Scene from a JSON file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Save writes a Scene to a JSON file.
func Save(path string, s *Scene) error {
	sf, err := toFile(s)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return f.Close()
}

func toFile(s *Scene) (File, error) {
	f := File{MaxDistance: s.MaxDistance}
	for i, surface := range s.Surfaces {
		c := surface.Color()
		color := [3]uint8{c.R, c.G, c.B}

		switch v := surface.(type) {
		case *geometry.Sphere:
			f.Surfaces = append(f.Surfaces, SurfaceFile{
				Type:   "sphere",
				Center: fromVec3(v.Center),
				Radius: v.Radius,
				Color:  &color,
			})
		case *geometry.Plane:
			f.Surfaces = append(f.Surfaces, SurfaceFile{
				Type:   "plane",
				Point:  fromVec3(v.Point),
				Normal: fromVec3(v.Normal),
				Color:  &color,
			})
		default:
			return File{}, fmt.Errorf("surface %d: cannot encode %T", i, surface)
		}
	}
	return f, nil
}

func toVec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func fromVec3(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
