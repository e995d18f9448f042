package schema

import (
	"context"
	"embed"
	"fmt"
	"os"
)

//go:embed openapi/customers.yaml
var bundled embed.FS

const bundledName = "openapi/customers.yaml"

// Bundled loads the catalog from the document shipped with the binary.
func Bundled(ctx context.Context) (*Catalog, error) {
	raw, err := bundled.ReadFile(bundledName)
	if err != nil {
		return nil, fmt.Errorf("schema: read bundled document: %w", err)
	}
	doc, err := NewDocument(SourceFromEmbedded(bundledName), raw)
	if err != nil {
		return nil, err
	}
	return Load(ctx, doc)
}

// MustBundled panics when the bundled document cannot be loaded.
func MustBundled() *Catalog {
	catalog, err := Bundled(context.Background())
	if err != nil {
		panic(err)
	}
	return catalog
}

// LoadFile loads the catalog from an OpenAPI document on disk.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	src := SourceFromFile(path)
	raw, err := os.ReadFile(src.Location())
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", src.Location(), err)
	}
	doc, err := NewDocument(src, raw)
	if err != nil {
		return nil, err
	}
	return Load(ctx, doc)
}
