package annotate

import "image/color"

// Config holds the drawing style for annotation rectangles.
type Config struct {
	Color     color.RGBA // Stroke color for the boxes
	LineWidth float64    // Stroke width in pixels
}

// DefaultConfig returns the stock style: a 5px yellow outline.
func DefaultConfig() Config {
	return Config{
		Color:     color.RGBA{R: 255, G: 255, B: 0, A: 255},
		LineWidth: 5,
	}
}
