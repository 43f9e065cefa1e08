package service

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"logogen/internal/core/domain"
	"logogen/internal/core/port"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

type LogoGenerator struct {
	store   port.ImageStore
	resizer port.Resizer
	paths   domain.Paths
	sizes   []domain.Size
}

func NewLogoGenerator(store port.ImageStore, resizer port.Resizer, paths domain.Paths) *LogoGenerator {
	return &LogoGenerator{store: store, resizer: resizer, paths: paths, sizes: domain.SizeTable()}
}

// Generate writes every entry of the size table into the output directory and removes the legacy favicon. A nil
// error means the run succeeded; a missing source yields domain.ErrSourceNotFound before anything is written.
func (g *LogoGenerator) Generate(ctx context.Context) (*domain.Report, error) {
	l := log.With().
		Str("source", g.paths.Source).
		Str("output", g.paths.Output).
		Logger()

	exists, err := g.store.Exists(g.paths.Source)
	if err != nil {
		return nil, err
	}
	if !exists {
		l.Error().Msg("source logo not found")
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, g.paths.Source)
	}

	if err := g.store.EnsureDir(g.paths.Output); err != nil {
		return nil, err
	}

	l.Info().Msg("loading source logo")

	src, format, err := g.store.Load(g.paths.Source)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Source:       g.paths.Source,
		Output:       g.paths.Output,
		SourceWidth:  src.Bounds().Dx(),
		SourceHeight: src.Bounds().Dy(),
		SourceFormat: format,
		ColorModel:   colorModelName(src),
	}

	src = withAlpha(src)

	l.Info().
		Int("width", report.SourceWidth).
		Int("height", report.SourceHeight).
		Str("format", format).
		Str("mode", report.ColorModel).
		Msg("source loaded")

	for _, size := range g.sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resized, err := g.resizer.Resize(src, size.Edge)
		if err != nil {
			return nil, fmt.Errorf("failed to resize %s: %w", size.Filename, err)
		}

		if err := g.store.SavePNG(filepath.Join(g.paths.Output, size.Filename), resized); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", size.Filename, err)
		}

		report.Generated = append(report.Generated, size)
		l.Info().Str("file", size.Filename).Int("edge", size.Edge).
			Msgf("generated %s (%dx%d)", size.Filename, size.Edge, size.Edge)
	}

	removed, err := g.store.Remove(g.paths.LegacyPath())
	if err != nil {
		l.Warn().Err(err).Str("file", domain.LegacyFavicon).Msg("could not delete legacy favicon")
	} else if removed {
		l.Info().Str("file", domain.LegacyFavicon).Msg("deleted legacy favicon")
	}
	report.LegacyRemoved = removed

	l.Info().Int("count", len(report.Generated)).Msg("logo generation finished")

	return report, nil
}

// withAlpha converts img to NRGBA unless it already carries a straight or premultiplied alpha channel.
func withAlpha(img image.Image) image.Image {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return img
	default:
		return imaging.Clone(img)
	}
}

func colorModelName(img image.Image) string {
	switch img.(type) {
	case *image.NRGBA:
		return "NRGBA"
	case *image.RGBA:
		return "RGBA"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.RGBA64:
		return "RGBA64"
	case *image.Gray:
		return "Gray"
	case *image.Gray16:
		return "Gray16"
	case *image.Paletted:
		return "Paletted"
	case *image.YCbCr:
		return "YCbCr"
	case *image.CMYK:
		return "CMYK"
	default:
		return fmt.Sprintf("%T", img)
	}
}
