// Package chrome builds the static page chrome (header navigation, footer,
// theme variables) shared by every page. Themes are go-theme manifests; the
// selected theme's tokens become CSS custom properties and its asset map
// resolves stylesheet URLs.
package chrome
