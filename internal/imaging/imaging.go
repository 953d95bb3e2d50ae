// Package imaging decodes pictures for inline embedding and scales them to
// the editor's fixed footprint.
package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Footprint is the width and height every embedded picture is scaled to.
const Footprint = 400

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Extensions lists the file extensions offered by the image chooser.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}

// Scaler resizes src to exactly w×h pixels.
type Scaler interface {
	Scale(src image.Image, w, h int) (image.Image, error)
}

// Picture is a decoded, scaled image ready for embedding.
type Picture struct {
	Name   string
	Format string
	Source image.Point
	Image  image.Image
}

// Load decodes r and scales the result to Footprint×Footprint regardless of
// its aspect ratio.
func Load(r io.Reader, name string, s Scaler) (*Picture, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("decode %s: %w", name, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if s == nil {
		s = DefaultScaler()
	}

	scaled, err := s.Scale(src, Footprint, Footprint)
	if err != nil {
		return nil, fmt.Errorf("scale %s: %w", name, err)
	}

	return &Picture{
		Name:   name,
		Format: format,
		Source: src.Bounds().Size(),
		Image:  scaled,
	}, nil
}
