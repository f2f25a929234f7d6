package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose ray hit a surface
	BackgroundPixels int           // Pixels left at the background color
	Workers          int           // Number of workers used
	Elapsed          time.Duration // Wall time of the render
}

// merge adds the pixel counts of other into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.BackgroundPixels += other.BackgroundPixels
}
