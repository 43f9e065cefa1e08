package resizer

import (
	"fmt"
	"image"

	"logogen/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

type NfntResizer struct {
	interpolation resize.InterpolationFunction
}

func NewNfntResizer() *NfntResizer {
	return &NfntResizer{interpolation: resize.Lanczos3}
}

// Resize returns an NRGBA image regardless of the pixel layout nfnt picks for the source.
func (r *NfntResizer) Resize(img image.Image, edge int) (image.Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEdge, edge)
	}

	log.Debug().Int("edge", edge).Str("engine", EngineNfnt).Msg("resizing")

	resized := resize.Resize(uint(edge), uint(edge), img, r.interpolation)

	return imaging.Clone(resized), nil
}
