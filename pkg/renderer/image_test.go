package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestNewImage_Background(t *testing.T) {
	background := core.NewColor(9, 8, 7)
	img := NewImage(3, 2, background)

	if len(img.Pixels) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(img.Pixels))
	}
	for i, c := range img.Pixels {
		if c != background {
			t.Errorf("Pixel %d: expected background, got %v", i, c)
		}
	}
}

func TestImage_StorageOrder(t *testing.T) {
	img := NewImage(3, 2, core.Black)
	img.Set(2, 1, core.Red)

	if img.Index(2, 1) != 5 || img.Pixels[5] != core.Red {
		t.Errorf("Expected grid pixel (2,1) at index 5, got index %d", img.Index(2, 1))
	}

	// At reads the buffer row-major: index 5 is the last pixel of row 1
	if got := color.RGBAModel.Convert(img.At(2, 1)).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected At(2,1) red, got %v", got)
	}

	img.Set(0, 1, core.White) // index 1
	if got := color.RGBAModel.Convert(img.At(1, 0)).(color.RGBA); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected At(1,0) white, got %v", got)
	}

	if got := img.At(3, 0); got != (color.RGBA{}) {
		t.Errorf("Expected zero color outside bounds, got %v", got)
	}
}
