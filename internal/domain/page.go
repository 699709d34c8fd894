package domain

import "html/template"

// BlockKind identifies how a page block is displayed.
type BlockKind string

const (
	BlockKindHeading   BlockKind = "heading"
	BlockKindImage     BlockKind = "image"
	BlockKindParagraph BlockKind = "paragraph"
	BlockKindCode      BlockKind = "code"
)

// SidebarState mirrors the initial sidebar layout of the page.
type SidebarState string

const (
	SidebarExpanded  SidebarState = "expanded"
	SidebarCollapsed SidebarState = "collapsed"
)

// PageMeta holds page-level metadata.
type PageMeta struct {
	Title        string
	Icon         string
	SidebarState SidebarState
}

// Block is a single rendered element of the page.
type Block struct {
	Kind BlockKind

	// Heading
	Level int

	// Heading, paragraph and code
	Text string

	// Paragraph, rendered from markdown
	HTML template.HTML

	// Code
	Language string

	// Image
	Asset   *Asset
	Caption string
}

// Page is the result of a single render.
type Page struct {
	Meta   PageMeta
	Blocks []Block
}
