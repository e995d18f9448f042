// Package template defines the renderer-agnostic template seam. Renderers
// depend on TemplateRenderer; gotemplate provides the pongo2-backed engine.
package template
