package renderer

import "errors"

var (
	// ErrInvalidWorkerCount is returned when a pool is requested with no workers
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrRenderIncomplete is returned when an image buffer is read before rendering finished
	ErrRenderIncomplete = errors.New("image buffer read before rendering completed")

	// ErrInvalidDimensions is returned for unusable image or sampling settings
	ErrInvalidDimensions = errors.New("invalid image dimensions or sampling settings")
)
