package resizer

import (
	"fmt"
	"image"

	"logogen/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

type ImagingResizer struct {
	filter imaging.ResampleFilter
}

func NewImagingResizer() *ImagingResizer {
	return &ImagingResizer{filter: imaging.Lanczos}
}

func (r *ImagingResizer) Resize(img image.Image, edge int) (image.Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEdge, edge)
	}

	log.Debug().Int("edge", edge).Str("engine", EngineImaging).Msg("resizing")

	return imaging.Resize(img, edge, edge, r.filter), nil
}
