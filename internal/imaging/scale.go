package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// DrawScaler resamples with an x/image interpolator.
type DrawScaler struct {
	Interpolator draw.Interpolator
}

func NewDrawScaler() *DrawScaler {
	return &DrawScaler{Interpolator: draw.CatmullRom}
}

func (d *DrawScaler) Scale(src image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}
	interp := d.Interpolator
	if interp == nil {
		interp = draw.CatmullRom
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
