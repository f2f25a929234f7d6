package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// MockScene encodes the pixel coordinates of each ray into the returned color
type MockScene struct {
	width, height int
}

func (m MockScene) Nearest(ray core.Ray) (core.Color, float64, bool) {
	// Recover the plane point (px, py, 1) from the normalized direction
	px := ray.Direction.X / ray.Direction.Z
	py := ray.Direction.Y / ray.Direction.Z
	x := math.Round((px + 1) * float64(m.width) / 2)
	y := math.Round((py + 1) * float64(m.height) / 2)
	return core.NewColor(uint8(x), uint8(y), 7), 1, true
}

// countingLogger records how many lines were logged
type countingLogger struct {
	lines int
}

func (l *countingLogger) Printf(string, ...interface{}) { l.lines++ }

func testConfig(width, height int) Config {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	return config
}

func TestRasterizer_EndToEnd(t *testing.T) {
	red := scene.New(geometry.NewSphere(core.NewVec3(0, 0, 5), 3).WithColor(core.Red))
	config := testConfig(2, 2)
	config.Background = core.NewColor(0, 0, 40)

	logger := &countingLogger{}
	r, err := NewRasterizer(red, config, logger)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, stats, err := r.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Pixel (1,1) looks straight down the z axis
	if got := img.Pixel(1, 1); got != core.Red {
		t.Errorf("Expected on-axis pixel to be red, got %v", got)
	}
	// The other three look 45 degrees or more off axis and miss
	for _, p := range [][2]int{{0, 0}, {0, 1}, {1, 0}} {
		if got := img.Pixel(p[0], p[1]); got != config.Background {
			t.Errorf("Expected pixel %v to be background, got %v", p, got)
		}
	}

	if stats.TotalPixels != 4 || stats.HitPixels != 1 || stats.BackgroundPixels != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if logger.lines == 0 {
		t.Error("Expected render progress to be logged")
	}
}

func TestRasterizer_ColumnMajorLayout(t *testing.T) {
	const width, height = 5, 3
	r, err := NewRasterizer(MockScene{width, height}, testConfig(width, height), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, _, err := r.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(img.Pixels) != width*height {
		t.Fatalf("Expected %d pixels, got %d", width*height, len(img.Pixels))
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			want := core.NewColor(uint8(x), uint8(y), 7)
			if got := img.Pixels[x*height+y]; got != want {
				t.Errorf("Pixels[%d] (x=%d, y=%d): expected %v, got %v", x*height+y, x, y, want, got)
			}
		}
	}
}

func TestRasterizer_WorkerCountIndependent(t *testing.T) {
	var reference *Image

	for _, workers := range []int{1, 2, 7, 64} {
		config := testConfig(37, 23)
		config.NumWorkers = workers

		r, err := NewRasterizer(scene.NewDefaultScene(), config, nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		img, _, err := r.Render()
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}

		if reference == nil {
			reference = img
			continue
		}
		for i := range img.Pixels {
			if img.Pixels[i] != reference.Pixels[i] {
				t.Fatalf("%d workers: pixel %d differs: %v vs %v", workers, i, img.Pixels[i], reference.Pixels[i])
			}
		}
	}
}

func TestRasterizer_DefaultScene(t *testing.T) {
	r, err := NewRasterizer(scene.NewDefaultScene(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, stats, err := r.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	tests := []struct {
		name  string
		x, y  int
		color core.Color
	}{
		{"center hits white sphere", 200, 200, core.White},
		{"towards red sphere center", 266, 266, core.Red},
		{"corner misses", 0, 0, core.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.Pixel(tt.x, tt.y); got != tt.color {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.color, got)
			}
		})
	}

	if stats.TotalPixels != 400*400 || stats.HitPixels+stats.BackgroundPixels != stats.TotalPixels {
		t.Errorf("Inconsistent stats %+v", stats)
	}
}

func TestNewRasterizer_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -4 }},
		{"plane at eye", func(c *Config) { c.PlaneDepth = 0 }},
		{"plane behind eye", func(c *Config) { c.Eye = core.NewVec3(0, 0, 2) }},
		{"negative workers", func(c *Config) { c.NumWorkers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			_, err := NewRasterizer(scene.NewDefaultScene(), config, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
