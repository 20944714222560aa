package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-band-raytracer/pkg/core"
)

// ErrIncompleteImage is returned when assembling an image that is missing pixels
var ErrIncompleteImage = errors.New("image incomplete")

// PixelResult is one finished pixel emitted by a worker. Offset is the pixel's
// position inside its band, counted row by row from the band's first row.
type PixelResult struct {
	Band   int
	Offset int
	Pixel  core.Pixel
}

// Collector buffers worker output per band. Results may arrive in any order
// across bands; nothing is assembled until every producer is finished.
type Collector struct {
	width    int
	bands    []Band
	buffers  [][]core.Pixel
	received []int
}

// NewCollector prepares buffers for the given bands of a width-pixel-wide image
func NewCollector(width int, bands []Band) *Collector {
	c := &Collector{
		width:    width,
		bands:    bands,
		buffers:  make([][]core.Pixel, len(bands)),
		received: make([]int, len(bands)),
	}
	for i, band := range bands {
		c.buffers[i] = make([]core.Pixel, band.Rows()*width)
	}
	return c
}

// Add stores a single result
func (c *Collector) Add(result PixelResult) error {
	if result.Band < 0 || result.Band >= len(c.buffers) {
		return fmt.Errorf("result for unknown band %d", result.Band)
	}
	buffer := c.buffers[result.Band]
	if result.Offset < 0 || result.Offset >= len(buffer) {
		return fmt.Errorf("result offset %d outside band %d of %d pixels", result.Offset, result.Band, len(buffer))
	}
	buffer[result.Offset] = result.Pixel
	c.received[result.Band]++
	return nil
}

// Drain consumes results until the channel is closed, which happens once every
// producer has finished. It never stops early so producers cannot block forever;
// the first bad result is reported after the channel is exhausted.
func (c *Collector) Drain(results <-chan PixelResult, progress *Progress) error {
	var firstErr error
	for result := range results {
		if err := c.Add(result); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if progress != nil {
			progress.add(1)
		}
	}
	return firstErr
}

// Complete reports whether every band has received all of its pixels
func (c *Collector) Complete() bool {
	for i, buffer := range c.buffers {
		if c.received[i] < len(buffer) {
			return false
		}
	}
	return true
}

// Image assembles the bands into a row-major image with the top row first.
// Bands and the rows inside them are numbered from the bottom, so both are walked in reverse.
func (c *Collector) Image() (*Image, error) {
	if !c.Complete() {
		return nil, ErrIncompleteImage
	}

	height := 0
	for _, band := range c.bands {
		height += band.Rows()
	}

	img := &Image{
		Width:  c.width,
		Height: height,
		Pixels: make([]core.Pixel, 0, c.width*height),
	}
	for b := len(c.bands) - 1; b >= 0; b-- {
		buffer := c.buffers[b]
		for row := c.bands[b].Rows() - 1; row >= 0; row-- {
			img.Pixels = append(img.Pixels, buffer[row*c.width:(row+1)*c.width]...)
		}
	}
	return img, nil
}
