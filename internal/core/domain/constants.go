package domain

import "errors"

const LegacyFavicon = "favicon.ico"

var (
	ErrSourceNotFound = errors.New("source image not found")
	ErrDecodeFailed   = errors.New("failed to decode source image")
	ErrEncodeFailed   = errors.New("failed to encode image")
	ErrInvalidEdge    = errors.New("edge length must be positive")
)
