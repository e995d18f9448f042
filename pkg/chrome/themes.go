package chrome

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

const (
	DefaultTheme   = "northwind"
	DefaultVariant = "light"

	// StylesheetAsset is the asset key resolving the theme stylesheet.
	StylesheetAsset = "stylesheet"
)

// NorthwindManifest is the bundled theme.
func NorthwindManifest(assetPrefix string) *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			"northwind-primary":    "#2185d0",
			"northwind-positive":   "#21ba45",
			"northwind-background": "#f7f8fa",
		},
		Assets: theme.Assets{
			Prefix: assetPrefix,
			Files: map[string]string{
				StylesheetAsset: "northwind.css",
			},
		},
		Variants: map[string]theme.Variant{
			"light": {},
			"dark": {
				Tokens: map[string]string{
					"northwind-primary":    "#1b1c1d",
					"northwind-background": "#2b2c2e",
				},
			},
		},
	}
}

// Themes is a go-theme registry plus a selector with default fallbacks.
type Themes struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Themes)(nil)

// NewThemes registers the given manifests. The first manifest registered is
// not implicitly the default; defaults come from the arguments.
func NewThemes(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*Themes, error) {
	registry := theme.NewRegistry()
	t := &Themes{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("chrome: register theme %q: %w", manifest.Name, err)
		}
		t.manifests[manifest.Name] = manifest
	}
	if t.defaultTheme == "" {
		t.defaultTheme = DefaultTheme
	}
	if _, ok := t.manifests[t.defaultTheme]; !ok {
		return nil, fmt.Errorf("chrome: default theme %q is not registered", t.defaultTheme)
	}
	return t, nil
}

// Names lists the registered themes.
func (t *Themes) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.manifests))
	for name := range t.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a theme and variant, falling back to the defaults when
// either is blank. Unknown names are an error.
func (t *Themes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = t.defaultTheme
	}
	manifest, ok := t.manifests[name]
	if !ok {
		return nil, fmt.Errorf("chrome: theme %q not found", name)
	}

	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = t.defaultVariant
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("chrome: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// RendererConfig merges a selection's base and variant layers into the
// configuration renderers consume. Tokens become "--token" CSS variables.
func RendererConfig(selection *theme.Selection) theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return theme.RendererConfig{}
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	partials := mergeStrings(manifest.Templates, variant.Templates)
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)
	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok {
				return ""
			}
			if strings.Contains(file, "://") || prefix == "" {
				return file
			}
			return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
		},
	}
}

// CSSVarsStyle serialises CSS variables in key order.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s;", key, vars[key]))
	}
	return strings.Join(parts, " ")
}

func mergeStrings(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
