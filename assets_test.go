package northwind

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "northwind.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "--northwind-primary") {
		t.Fatalf("expected stylesheet to use theme variables")
	}
}

func TestEmbeddedTemplatesIncludePage(t *testing.T) {
	for _, name := range []string{"page.tpl", "table.tpl", "dialog.tpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}
