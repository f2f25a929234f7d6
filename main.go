package main

import (
	"fmt"
	"log"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/imageio"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

const outputPath = "./untitled.ppm"

func main() {
	log.Println("Starting raycaster...")

	build, err := scene.Lookup("default")
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	if err := run(build, renderer.DefaultConfig(), outputPath, renderer.NewDefaultLogger()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run builds the scene, renders it and writes the image to path
func run(build scene.Builder, config renderer.Config, path string, logger core.Logger) error {
	s, err := build()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	rasterizer, err := renderer.NewRasterizer(s, config, logger)
	if err != nil {
		return fmt.Errorf("create rasterizer: %w", err)
	}

	img, _, err := rasterizer.Render()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := imageio.Save(path, img); err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}
