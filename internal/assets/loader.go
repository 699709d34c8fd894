// Package assets loads the static images displayed on the dashboard.
// Every load reads and fully decodes the file so that a truncated or
// non-image file is reported before anything is rendered.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mtlprog/strokedash/internal/domain"
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// Loader reads assets from a file system rooted at the asset directory.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader creates a Loader rooted at dir on the local disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Load reads the asset at path and verifies it decodes as an image.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !fs.ValidPath(path) || path == "." {
		return nil, &domain.AssetError{Path: path, Err: domain.ErrInvalidAssetPath}
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.AssetError{Path: path, Err: domain.ErrAssetNotFound}
		}
		return nil, &domain.AssetError{Path: path, Err: fmt.Errorf("%w: %v", domain.ErrAssetUnreadable, err)}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.AssetError{Path: path, Err: fmt.Errorf("%w: %v", domain.ErrAssetNotDecodable, err)}
	}

	bounds := img.Bounds()
	asset := &domain.Asset{
		Path:        path,
		Format:      format,
		ContentType: contentTypeFor(format),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Data:        data,
	}

	slog.Debug("asset loaded",
		"path", path,
		"format", format,
		"width", asset.Width,
		"height", asset.Height,
		"size", len(data),
	)

	return asset, nil
}

// Check loads every path in order and returns the first failure.
func (l *Loader) Check(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		if _, err := l.Load(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

func contentTypeFor(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}
