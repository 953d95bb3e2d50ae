//go:build opencv

package imaging

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// OpenCVScaler resizes through OpenCV with area interpolation.
type OpenCVScaler struct{}

func (OpenCVScaler) Scale(src image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}

	mat, err := gocv.ImageToMatRGBA(src)
	if err != nil {
		return nil, fmt.Errorf("convert to mat: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("empty source image")
	}

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(mat, &dst, image.Pt(w, h), 0, 0, gocv.InterpolationArea)
	return dst.ToImage()
}

// DefaultScaler returns the OpenCV scaler in opencv builds.
func DefaultScaler() Scaler { return OpenCVScaler{} }
