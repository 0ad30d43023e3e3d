package renderer

import "errors"

// Configuration errors returned by NewCamera and Render.
var (
	ErrInvalidWidth         = errors.New("renderer: image width must be at least 1")
	ErrInvalidAspectRatio   = errors.New("renderer: aspect ratio must be positive and finite")
	ErrInvalidSamples       = errors.New("renderer: samples per pixel must be at least 1")
	ErrInvalidDepth         = errors.New("renderer: max depth must not be negative")
	ErrInvalidFieldOfView   = errors.New("renderer: vertical field of view must be in (0, 180) degrees")
	ErrInvalidFocusDistance = errors.New("renderer: focus distance must be positive")
	ErrDegenerateView       = errors.New("renderer: look-from, look-at and up do not span a view basis")
	ErrNilWorld             = errors.New("renderer: world is nil")
)
