package fomantic

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName = "northwind.css"

	// FomanticCSS and FomanticJS point at the CSS/icon framework CDN build.
	FomanticCSS = "https://cdn.jsdelivr.net/npm/fomantic-ui@2.9.3/dist/semantic.min.css"
	FomanticJS  = "https://cdn.jsdelivr.net/npm/fomantic-ui@2.9.3/dist/semantic.min.js"
	JQueryJS    = "https://code.jquery.com/jquery-3.7.1.min.js"
)

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the embedded stylesheet so the HTTP component can serve
// it next to the pages.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
