package resizer

import (
	"fmt"

	"logogen/internal/core/port"
)

const (
	EngineImaging = "imaging"
	EngineNfnt    = "nfnt"
)

// New returns the resizer registered under engine.
func New(engine string) (port.Resizer, error) {
	switch engine {
	case EngineImaging, "":
		return NewImagingResizer(), nil
	case EngineNfnt:
		return NewNfntResizer(), nil
	default:
		return nil, fmt.Errorf("unknown resize engine %q", engine)
	}
}
