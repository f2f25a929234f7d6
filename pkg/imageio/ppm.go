package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// WritePPM encodes img as binary PPM (P6). Pixels are written in buffer
// storage order with no padding and no trailing data.
func WritePPM(w io.Writer, img *renderer.Image) error {
	if len(img.Pixels) != img.Width*img.Height {
		return fmt.Errorf("image %dx%d has %d pixels", img.Width, img.Height, len(img.Pixels))
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for _, c := range img.Pixels {
		if _, err := bw.Write([]byte{c.R, c.G, c.B}); err != nil {
			return fmt.Errorf("write ppm pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm pixels: %w", err)
	}
	return nil
}

// SavePPM writes img to path as binary PPM. The file is always closed;
// a failed close is reported like any other write failure.
func SavePPM(path string, img *renderer.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", cerr)
		}
	}()

	return WritePPM(file, img)
}
