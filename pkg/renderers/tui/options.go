package tui

import (
	"io"
	"io/fs"
)

// Theme captures optional message prefixes the prompts apply when printing.
// Keep minimal to avoid coupling flow logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is used when no theme is supplied.
var DefaultTheme = Theme{InfoPrefix: "", ErrorPrefix: "! "}

// Option configures the text renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the embedded template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.templateFS = files
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithColumnGap sets the number of spaces between table columns.
func WithColumnGap(gap int) Option {
	return func(r *Renderer) {
		if gap > 0 {
			r.gap = gap
		}
	}
}

// PromptOption configures Prompts.
type PromptOption func(*Prompts)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) PromptOption {
	return func(p *Prompts) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithPromptTheme applies message prefixes to prompts.
func WithPromptTheme(theme Theme) PromptOption {
	return func(p *Prompts) {
		p.theme = theme
	}
}

// WithInfoOutput directs the default driver's Info messages to out.
func WithInfoOutput(out io.Writer) PromptOption {
	return func(p *Prompts) {
		if out != nil {
			p.driver = NewSurveyDriver(out)
		}
	}
}
