package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-band-raytracer/pkg/renderer"
)

// FileSink writes the finished image to a file. The file only appears once
// encoding has succeeded; a partial image is never left at Path.
type FileSink struct {
	Path    string
	Encoder Encoder
}

// NewFileSink creates a sink that encodes with enc and writes to path
func NewFileSink(path string, enc Encoder) *FileSink {
	return &FileSink{Path: path, Encoder: enc}
}

// WriteImage implements renderer.Sink
func (s *FileSink) WriteImage(img *renderer.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = s.Encoder.Encode(tmp, img); err != nil {
		return fmt.Errorf("encoding %s: %w", s.Encoder.Extension(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("moving image into place: %w", err)
	}
	return nil
}

var _ renderer.Sink = (*FileSink)(nil)
