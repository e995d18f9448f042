package northwind

import (
	"io/fs"

	"github.com/goliatone/go-northwind/pkg/renderers/fomantic"
)

// AssetsFS exposes the stylesheet shipped with the HTML renderer so callers
// mounting the handler themselves can serve it.
//
// Typical mount:
//
//	r.Handle("/assets/*",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(northwind.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return fomantic.AssetsFS()
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can
// extend or override them through fomantic.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return fomantic.TemplatesFS()
}
