package renderer

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width           int     // Image width in pixels
	AspectRatio     float64 // Width / height; determines the image height
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	BandSize        int     // Rows rendered by each worker
	Seed            int64   // Base seed; band i samples with Seed+i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           450,
		AspectRatio:     1.0,
		SamplesPerPixel: 150,
		MaxDepth:        50,
		BandSize:        150,
		Seed:            42,
	}
}

// Height returns the image height derived from width and aspect ratio
func (c Config) Height() int {
	if c.AspectRatio <= 0 {
		return 0
	}
	return int(float64(c.Width) / c.AspectRatio)
}

// Bands returns the number of row bands, and so the number of workers
func (c Config) Bands() int {
	if c.BandSize <= 0 {
		return 0
	}
	return c.Height() / c.BandSize
}

// Validate checks the configuration before any work starts. Both image dimensions
// must be divisible by the band size.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.AspectRatio <= 0 || math.IsInf(c.AspectRatio, 0) || math.IsNaN(c.AspectRatio):
		return fmt.Errorf("%w: aspect ratio must be positive and finite, got %v", ErrInvalidConfig, c.AspectRatio)
	case c.Height() <= 0:
		return fmt.Errorf("%w: width %d and aspect ratio %v give an empty image", ErrInvalidConfig, c.Width, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.BandSize <= 0:
		return fmt.Errorf("%w: band size must be positive, got %d", ErrInvalidConfig, c.BandSize)
	case c.Width%c.BandSize != 0:
		return fmt.Errorf("%w: image width %d must be divisible by the band size %d", ErrInvalidConfig, c.Width, c.BandSize)
	case c.Height()%c.BandSize != 0:
		return fmt.Errorf("%w: image height %d must be divisible by the band size %d", ErrInvalidConfig, c.Height(), c.BandSize)
	}
	return nil
}
