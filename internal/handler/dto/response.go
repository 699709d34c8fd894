package dto

import "github.com/mtlprog/strokedash/internal/domain"

// PageResponse represents the response for GET /api/v1/page.
type PageResponse struct {
	Title        string          `json:"title"`
	Icon         string          `json:"icon"`
	SidebarState string          `json:"sidebar_state"`
	Blocks       []BlockResponse `json:"blocks"`
}

// BlockResponse represents a single page block.
type BlockResponse struct {
	Kind     string         `json:"kind"`
	Level    int            `json:"level,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Language string         `json:"language,omitempty"`
	Caption  string         `json:"caption,omitempty"`
	Image    *ImageResponse `json:"image,omitempty"`
}

// ImageResponse describes an image block's asset.
type ImageResponse struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"`
}

// HealthResponse represents the response for GET /healthz.
type HealthResponse struct {
	Status string   `json:"status"`
	Assets []string `json:"assets"`
	Error  string   `json:"error,omitempty"`
}

// NewPageResponse converts a rendered page to its JSON form.
func NewPageResponse(page *domain.Page, assetURLPrefix string) PageResponse {
	resp := PageResponse{
		Title:        page.Meta.Title,
		Icon:         page.Meta.Icon,
		SidebarState: string(page.Meta.SidebarState),
		Blocks:       make([]BlockResponse, 0, len(page.Blocks)),
	}

	for _, b := range page.Blocks {
		block := BlockResponse{
			Kind:     string(b.Kind),
			Level:    b.Level,
			Text:     b.Text,
			HTML:     string(b.HTML),
			Language: b.Language,
			Caption:  b.Caption,
		}
		if b.Asset != nil {
			block.Image = &ImageResponse{
				Path:        b.Asset.Path,
				URL:         assetURLPrefix + b.Asset.Path,
				ContentType: b.Asset.ContentType,
				Width:       b.Asset.Width,
				Height:      b.Asset.Height,
				Size:        len(b.Asset.Data),
			}
		}
		resp.Blocks = append(resp.Blocks, block)
	}

	return resp
}
