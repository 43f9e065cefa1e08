package domain

import "path/filepath"

const (
	SourceFilename = "logo.png"
	OutputDirname  = "public"
)

// Size is a single square output image.
type Size struct {
	Filename string
	Edge     int
}

var sizeTable = []Size{
	{Filename: "logo-32.png", Edge: 32},   // header icon
	{Filename: "logo-64.png", Edge: 64},   // login page
	{Filename: "logo-128.png", Edge: 128}, // high density displays
	{Filename: "logo-192.png", Edge: 192}, // app icon
	{Filename: "logo-512.png", Edge: 512}, // installable app icon
	{Filename: "favicon.png", Edge: 32},   // replaces favicon.ico
}

// SizeTable returns a copy of the fixed output table, in generation order.
func SizeTable() []Size {
	sizes := make([]Size, len(sizeTable))
	copy(sizes, sizeTable)
	return sizes
}

type Paths struct {
	Source string
	Output string
}

// ResolvePaths returns the source and output locations below a project root.
func ResolvePaths(root string) Paths {
	return Paths{
		Source: filepath.Join(root, SourceFilename),
		Output: filepath.Join(root, OutputDirname),
	}
}

// LegacyPath is the location of the deprecated favicon inside the output directory.
func (p Paths) LegacyPath() string {
	return filepath.Join(p.Output, LegacyFavicon)
}

type Report struct {
	Source        string
	Output        string
	SourceWidth   int
	SourceHeight  int
	SourceFormat  string
	ColorModel    string
	Generated     []Size
	LegacyRemoved bool
}
