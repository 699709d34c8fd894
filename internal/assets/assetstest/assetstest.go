// Package assetstest builds in-memory image fixtures for tests.
package assetstest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// PNG encodes a w x h image with a diagonal gradient.
func PNG(tb testing.TB, w, h int) []byte {
	tb.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// FS returns a file system holding a distinct PNG for every path.
func FS(tb testing.TB, paths ...string) fstest.MapFS {
	tb.Helper()

	fsys := fstest.MapFS{}
	for i, path := range paths {
		fsys[path] = &fstest.MapFile{Data: PNG(tb, 4+i, 3+i)}
	}
	return fsys
}
