package file

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"logogen/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const dirPerm = 0o755

// alphaImage makes the PNG encoder emit an RGBA color type even when every pixel is opaque.
type alphaImage struct {
	*image.NRGBA
}

func (alphaImage) Opaque() bool {
	return false
}

// Store reads and writes images on the local filesystem.
type Store struct {
	encoder *png.Encoder
}

func NewStore() *Store {
	return &Store{encoder: &png.Encoder{CompressionLevel: png.BestCompression}}
}

func (s *Store) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	err = fmt.Errorf("error checking %s: %w", path, err)
	log.Error().Err(err).Str("path", path).Send()
	return false, err
}

func (s *Store) EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		err = fmt.Errorf("error creating directory %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return err
	}

	log.Debug().Str("path", path).Msg("output directory ready")
	return nil
}

func (s *Store) Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		err = fmt.Errorf("error opening image %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", domain.ErrDecodeFailed, path, err)
		log.Error().Err(err).Str("path", path).Send()
		return nil, "", err
	}

	log.Debug().Str("path", path).Str("format", format).Msg("decoded image")

	return img, format, nil
}

// SavePNG writes to a temporary file next to path and renames it into place, so an interrupted write never leaves a
// truncated image behind. The output always carries an alpha channel.
func (s *Store) SavePNG(path string, img image.Image) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.tmp", id.String()))

	f, err := os.Create(tmp)
	if err != nil {
		err = fmt.Errorf("error creating temp file %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return err
	}

	if err := s.encoder.Encode(f, alphaImage{imaging.Clone(img)}); err != nil {
		f.Close()
		s.removeTemp(tmp)
		err = fmt.Errorf("%w: %s: %w", domain.ErrEncodeFailed, path, err)
		log.Error().Err(err).Send()
		return err
	}

	if err := f.Close(); err != nil {
		s.removeTemp(tmp)
		err = fmt.Errorf("error writing temp file %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		s.removeTemp(tmp)
		err = fmt.Errorf("error moving image into place %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return err
	}

	log.Debug().Str("path", path).Msg("wrote image")

	return nil
}

func (s *Store) Remove(path string) (bool, error) {
	err := os.Remove(path)
	if err == nil {
		log.Debug().Str("path", path).Msg("removed file")
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("error removing %s: %w", path, err)
}

func (s *Store) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
	}
}
