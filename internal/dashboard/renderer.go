// Package dashboard turns a fixed page definition into a rendered page.
//
// A render loads every declared asset before building any block. If one
// asset fails, the whole render fails and no page is returned.
package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/russross/blackfriday/v2"

	"github.com/mtlprog/strokedash/internal/domain"
)

// AssetLoader loads a single asset by path.
type AssetLoader interface {
	Load(ctx context.Context, path string) (*domain.Asset, error)
}

// Renderer builds pages from Content.
type Renderer struct {
	loader  AssetLoader
	content Content
}

// NewRenderer creates a new Renderer.
func NewRenderer(loader AssetLoader, content Content) *Renderer {
	return &Renderer{
		loader:  loader,
		content: content,
	}
}

// Content returns the page definition the renderer was built with.
func (r *Renderer) Content() Content {
	return r.content
}

// Render loads all assets and returns the page blocks in declaration order.
func (r *Renderer) Render(ctx context.Context) (*domain.Page, error) {
	loaded := make(map[string]*domain.Asset)
	for _, path := range r.content.Assets() {
		asset, err := r.loader.Load(ctx, path)
		if err != nil {
			slog.Error("render aborted", "asset", path, "error", err)
			return nil, fmt.Errorf("load assets: %w", err)
		}
		loaded[path] = asset
	}

	blocks := make([]domain.Block, 0, len(r.content.Sections))
	for i, s := range r.content.Sections {
		block, err := buildBlock(s, loaded)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		blocks = append(blocks, block)
	}

	return &domain.Page{
		Meta:   r.content.Meta,
		Blocks: blocks,
	}, nil
}

// Asset loads one declared asset for direct download.
func (r *Renderer) Asset(ctx context.Context, path string) (*domain.Asset, error) {
	if !r.content.Declares(path) {
		return nil, &domain.AssetError{Path: path, Err: domain.ErrUnknownAsset}
	}
	return r.loader.Load(ctx, path)
}

func buildBlock(s Section, loaded map[string]*domain.Asset) (domain.Block, error) {
	switch s.Kind {
	case domain.BlockKindHeading:
		return domain.Block{Kind: s.Kind, Level: s.Level, Text: s.Text}, nil
	case domain.BlockKindParagraph:
		return domain.Block{Kind: s.Kind, Text: s.Text, HTML: Markdown(s.Text)}, nil
	case domain.BlockKindCode:
		return domain.Block{Kind: s.Kind, Text: s.Text, Language: s.Language}, nil
	case domain.BlockKindImage:
		asset, ok := loaded[s.Asset]
		if !ok {
			return domain.Block{}, &domain.AssetError{Path: s.Asset, Err: domain.ErrAssetNotFound}
		}
		return domain.Block{Kind: s.Kind, Asset: asset, Caption: s.Caption}, nil
	default:
		return domain.Block{}, fmt.Errorf("unknown block kind %q", s.Kind)
	}
}

// Markdown converts trusted, compile-time markdown into HTML.
func Markdown(text string) template.HTML {
	return template.HTML(blackfriday.Run([]byte(text)))
}
