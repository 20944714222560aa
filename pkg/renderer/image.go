package renderer

import (
	"image"

	"github.com/df07/go-band-raytracer/pkg/core"
)

// Image is a finished render: Width*Height pixels in row-major order, top row first
type Image struct {
	Width  int
	Height int
	Pixels []core.Pixel
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Pixel, width*height),
	}
}

// At returns the pixel at column x, row y (y = 0 is the top row)
func (img *Image) At(x, y int) core.Pixel {
	return img.Pixels[y*img.Width+x]
}

// ToRGBA converts the image for the standard library encoders
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba.SetRGBA(x, y, img.At(x, y).RGBA())
		}
	}
	return rgba
}

// Sink receives a fully assembled image once rendering succeeds
type Sink interface {
	WriteImage(img *Image) error
}
