package port

import "image"

type Resizer interface {
	// Resize scales img to exactly edge x edge pixels with a high-quality resampling filter. Non-square sources are
	// stretched to fit.
	Resize(img image.Image, edge int) (image.Image, error)
}
