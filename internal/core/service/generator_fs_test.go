package service_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"logogen/internal/adapters/file"
	"logogen/internal/adapters/resizer"
	"logogen/internal/core/domain"
	"logogen/internal/core/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOpaqueJPEG(t *testing.T, path string, edge int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, edge, edge))
	for y := range edge {
		for x := range edge {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 64, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 90}))
}

func assertOutputs(t *testing.T, dir string) {
	t.Helper()

	for _, size := range domain.SizeTable() {
		f, err := os.Open(filepath.Join(dir, size.Filename))
		require.NoError(t, err, size.Filename)

		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, size.Filename)

		assert.Equal(t, size.Edge, img.Bounds().Dx(), size.Filename)
		assert.Equal(t, size.Edge, img.Bounds().Dy(), size.Filename)
		assert.IsType(t, &image.NRGBA{}, img, size.Filename)
	}
}

func TestGenerateWritesAllSizes(t *testing.T) {
	for _, engine := range []string{resizer.EngineImaging, resizer.EngineNfnt} {
		t.Run(engine, func(t *testing.T) {
			root := t.TempDir()
			paths := domain.ResolvePaths(root)
			writeOpaqueJPEG(t, paths.Source, 2048)

			r, err := resizer.New(engine)
			require.NoError(t, err)

			gen := service.NewLogoGenerator(file.NewStore(), r, paths)

			report, err := gen.Generate(t.Context())
			require.NoError(t, err)
			assert.Len(t, report.Generated, 6)
			assert.Equal(t, "jpeg", report.SourceFormat)
			assert.False(t, report.LegacyRemoved)

			assertOutputs(t, paths.Output)

			entries, err := os.ReadDir(paths.Output)
			require.NoError(t, err)
			assert.Len(t, entries, 6)
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	paths := domain.ResolvePaths(root)
	writeOpaqueJPEG(t, paths.Source, 600)

	gen := service.NewLogoGenerator(file.NewStore(), resizer.NewImagingResizer(), paths)

	_, err := gen.Generate(t.Context())
	require.NoError(t, err)

	_, err = gen.Generate(t.Context())
	require.NoError(t, err)

	assertOutputs(t, paths.Output)
}

func TestGenerateRemovesLegacyFavicon(t *testing.T) {
	root := t.TempDir()
	paths := domain.ResolvePaths(root)
	writeOpaqueJPEG(t, paths.Source, 128)

	require.NoError(t, os.MkdirAll(paths.Output, 0o755))
	require.NoError(t, os.WriteFile(paths.LegacyPath(), []byte("ico"), 0o644))

	gen := service.NewLogoGenerator(file.NewStore(), resizer.NewImagingResizer(), paths)

	report, err := gen.Generate(t.Context())
	require.NoError(t, err)
	assert.True(t, report.LegacyRemoved)

	_, err = os.Stat(paths.LegacyPath())
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateMissingSourceWritesNothing(t *testing.T) {
	root := t.TempDir()
	paths := domain.ResolvePaths(root)

	gen := service.NewLogoGenerator(file.NewStore(), resizer.NewImagingResizer(), paths)

	report, err := gen.Generate(t.Context())
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.Nil(t, report)

	_, err = os.Stat(paths.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateUndecodableSource(t *testing.T) {
	root := t.TempDir()
	paths := domain.ResolvePaths(root)
	require.NoError(t, os.WriteFile(paths.Source, []byte("definitely not a png"), 0o644))

	gen := service.NewLogoGenerator(file.NewStore(), resizer.NewImagingResizer(), paths)

	_, err := gen.Generate(t.Context())
	require.ErrorIs(t, err, domain.ErrDecodeFailed)
}
