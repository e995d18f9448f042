package chrome

import (
	"fmt"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-northwind/pkg/render"
)

// Config carries the values the header and footer are built from.
type Config struct {
	AppName string
	Version string
	Home    string
	// Stylesheets and Scripts load before the theme stylesheet.
	Stylesheets []string
	Scripts     []string
}

// Builder produces render.Chrome for a theme selection.
type Builder struct {
	cfg    Config
	themes theme.ThemeSelector
	now    func() time.Time
}

// NewBuilder constructs a Builder. now defaults to time.Now.
func NewBuilder(cfg Config, themes theme.ThemeSelector, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	if strings.TrimSpace(cfg.AppName) == "" {
		cfg.AppName = "Northwind Traders"
	}
	if cfg.Home == "" {
		cfg.Home = "/"
	}
	return &Builder{cfg: cfg, themes: themes, now: now}
}

// Build resolves the theme and returns the chrome view data.
func (b *Builder) Build(themeName, variant string) (render.Chrome, error) {
	out := render.Chrome{
		AppName:     b.cfg.AppName,
		Version:     b.cfg.Version,
		Home:        b.cfg.Home,
		BrandIcon:   "shield",
		Nav:         Navigation(),
		FooterLinks: FooterLinks(),
		Copyright:   Copyright(b.cfg.AppName, b.now()),
		Stylesheets: append([]string(nil), b.cfg.Stylesheets...),
		Scripts:     append([]string(nil), b.cfg.Scripts...),
	}
	if b.themes == nil {
		return out, nil
	}

	selection, err := b.themes.Select(themeName, variant)
	if err != nil {
		return render.Chrome{}, err
	}
	cfg := RendererConfig(selection)
	out.Theme = cfg.Theme
	out.Variant = cfg.Variant
	out.CSSVars = CSSVarsStyle(cfg.CSSVars)
	if cfg.AssetURL != nil {
		if href := cfg.AssetURL(StylesheetAsset); href != "" {
			out.Stylesheets = append(out.Stylesheets, href)
		}
	}
	return out, nil
}

// Navigation returns the header links.
func Navigation() []render.Link {
	return []render.Link{
		{Label: "Customers", Href: "#customers", Icon: "users"},
		{Label: "About", Href: "#about", Icon: "info circle"},
	}
}

// FooterLinks returns the footer links.
func FooterLinks() []render.Link {
	return []render.Link{
		{Label: "Privacy Policy", Href: "#privacy"},
		{Label: "Terms of Service", Href: "#terms"},
		{Label: "Contact", Href: "#contact"},
	}
}

// Copyright returns the footer notice for the year of now.
func Copyright(appName string, now time.Time) string {
	return fmt.Sprintf("© %d %s. Demo Application for Educational Purposes.", now.Year(), appName)
}
