package imageio

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported image format")

type encoder func(w io.Writer, img *renderer.Image) error

var encoders = map[string]encoder{
	".ppm": WritePPM,
	".png": func(w io.Writer, img *renderer.Image) error {
		return png.Encode(w, img)
	},
	".bmp": func(w io.Writer, img *renderer.Image) error {
		return bmp.Encode(w, img)
	},
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img *renderer.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Save writes img to path, choosing the format from the file extension
func Save(path string, img *renderer.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", cerr)
		}
	}()

	if err := encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", ext, err)
	}
	return nil
}
