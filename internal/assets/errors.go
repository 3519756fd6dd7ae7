package assets

import "errors"

// Sentinel errors for style loading.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidStyleName indicates the name contains path separators,
	// dots or other characters not allowed in a style name.
	ErrInvalidStyleName = errors.New("invalid style name")

	// ErrInvalidBasePath indicates the style directory is not usable.
	ErrInvalidBasePath = errors.New("invalid style directory")

	// ErrAssetRead indicates an I/O error while reading a style file.
	ErrAssetRead = errors.New("failed to read style")

	// ErrPathTraversal indicates an attempt to read outside the style directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
