package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-band-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for an unsupported image format name
var ErrUnknownFormat = errors.New("unknown image format")

// Encoder writes a finished image in one file format
type Encoder interface {
	Encode(w io.Writer, img *renderer.Image) error
	Extension() string
}

// PPMEncoder writes plain-text P3 PPM, one "r g b" triple per line
type PPMEncoder struct{}

func (PPMEncoder) Extension() string { return "ppm" }

func (PPMEncoder) Encode(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for _, p := range img.Pixels {
		fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B)
	}
	return bw.Flush()
}

// PNGEncoder writes PNG through the standard library
type PNGEncoder struct{}

func (PNGEncoder) Extension() string { return "png" }

func (PNGEncoder) Encode(w io.Writer, img *renderer.Image) error {
	return png.Encode(w, img.ToRGBA())
}

// BMPEncoder writes uncompressed BMP
type BMPEncoder struct{}

func (BMPEncoder) Extension() string { return "bmp" }

func (BMPEncoder) Encode(w io.Writer, img *renderer.Image) error {
	return bmp.Encode(w, img.ToRGBA())
}

// TIFFEncoder writes deflate-compressed TIFF
type TIFFEncoder struct{}

func (TIFFEncoder) Extension() string { return "tiff" }

func (TIFFEncoder) Encode(w io.Writer, img *renderer.Image) error {
	return tiff.Encode(w, img.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
}

var encoders = map[string]Encoder{
	"ppm":  PPMEncoder{},
	"png":  PNGEncoder{},
	"bmp":  BMPEncoder{},
	"tiff": TIFFEncoder{},
	"tif":  TIFFEncoder{},
}

// NewEncoder looks up an encoder by format name or file extension
func NewEncoder(format string) (Encoder, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if enc, ok := encoders[key]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
}

// Formats returns the supported format names in sorted order
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
