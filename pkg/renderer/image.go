package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// Image is the pixel buffer written by the rasterizer.
// Pixel (x, y) of the render grid is stored at index x*Height + y.
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage allocates a width x height buffer filled with background
func NewImage(width, height int, background core.Color) *Image {
	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = background
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Index returns the buffer index of render grid pixel (x, y)
func (img *Image) Index(x, y int) int {
	return x*img.Height + y
}

// Pixel returns the color of render grid pixel (x, y)
func (img *Image) Pixel(x, y int) core.Color {
	return img.Pixels[img.Index(x, y)]
}

// Set stores the color of render grid pixel (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[img.Index(x, y)] = c
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image. The buffer is read sequentially in row-major
// order, the same way a PPM reader sees it, so every encoder produces the
// same picture.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	c := img.Pixels[y*img.Width+x]
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
