package port

import "image"

type ImageStore interface {
	// Exists reports whether a regular file or directory is present at path.
	Exists(path string) (bool, error)
	// EnsureDir creates the directory and any missing parents. An existing directory is not an error.
	EnsureDir(path string) error
	// Load decodes the image at path and returns it along with the name of the detected format.
	Load(path string) (image.Image, string, error)
	// SavePNG encodes img as a compressed PNG at path, replacing any existing file.
	SavePNG(path string, img image.Image) error
	// Remove deletes the file at path and reports whether something was removed. A missing file is not an error.
	Remove(path string) (bool, error)
}
