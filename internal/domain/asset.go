package domain

import (
	"encoding/base64"
	"html/template"
)

// Asset is a static image loaded from the asset directory.
type Asset struct {
	Path        string
	Format      string
	ContentType string
	Width       int
	Height      int
	Data        []byte
}

// DataURI returns the asset inlined as a data URI for self-contained pages.
func (a *Asset) DataURI() template.URL {
	return template.URL("data:" + a.ContentType + ";base64," + base64.StdEncoding.EncodeToString(a.Data))
}
