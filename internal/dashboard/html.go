package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/mtlprog/strokedash/internal/domain"
	"github.com/mtlprog/strokedash/internal/static"
)

// ImageMode selects how image blocks reference their bytes.
type ImageMode int

const (
	// ImagesLinked points images at AssetURLPrefix on the serving host.
	ImagesLinked ImageMode = iota
	// ImagesInline embeds images as data URIs for a self-contained file.
	ImagesInline
)

// AssetURLPrefix is the route under which assets are served.
const AssetURLPrefix = "/assets/"

type pageView struct {
	Meta   domain.PageMeta
	Style  template.CSS
	Blocks []blockView
}

type blockView struct {
	Kind     string
	Level    int
	Text     string
	HTML     template.HTML
	Language string
	Src      template.URL
	Alt      string
	Caption  string
	Width    int
	Height   int
}

// HTMLWriter renders pages with the embedded template.
type HTMLWriter struct {
	tmpl *template.Template
}

// NewHTMLWriter parses the embedded page template.
func NewHTMLWriter() (*HTMLWriter, error) {
	tmpl, err := static.Template()
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &HTMLWriter{tmpl: tmpl}, nil
}

// Write executes the template into a buffer and only then copies it to w,
// so a failed render never leaves partial HTML behind.
func (hw *HTMLWriter) Write(w io.Writer, page *domain.Page, mode ImageMode) error {
	view := pageView{
		Meta:   page.Meta,
		Style:  template.CSS(static.StyleCSS),
		Blocks: make([]blockView, 0, len(page.Blocks)),
	}
	for _, b := range page.Blocks {
		view.Blocks = append(view.Blocks, newBlockView(b, mode))
	}

	var buf bytes.Buffer
	if err := hw.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func newBlockView(b domain.Block, mode ImageMode) blockView {
	v := blockView{
		Kind:     string(b.Kind),
		Level:    b.Level,
		Text:     b.Text,
		HTML:     b.HTML,
		Language: b.Language,
		Caption:  b.Caption,
	}
	if b.Asset == nil {
		return v
	}

	v.Alt = b.Asset.Path
	v.Width = b.Asset.Width
	v.Height = b.Asset.Height
	switch mode {
	case ImagesInline:
		v.Src = b.Asset.DataURI()
	default:
		v.Src = template.URL(AssetURLPrefix + url.PathEscape(b.Asset.Path))
	}
	return v
}
