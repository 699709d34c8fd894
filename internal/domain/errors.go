package domain

import (
	"errors"
	"fmt"
)

// Domain-specific errors for page rendering.
var (
	// Asset errors
	ErrAssetNotFound     = errors.New("asset not found")
	ErrAssetUnreadable   = errors.New("asset unreadable")
	ErrAssetNotDecodable = errors.New("asset is not a decodable image")
	ErrInvalidAssetPath  = errors.New("invalid asset path")

	// Content errors
	ErrUnknownAsset = errors.New("asset not declared by page")
)

// AssetError records which asset failed and why.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %q: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
