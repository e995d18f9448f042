package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-northwind/pkg/field"
)

// Prompts adapts a PromptDriver to the interactive seams of the admin flows:
// filling dialog fields, confirming destructive actions and surfacing alerts.
type Prompts struct {
	driver PromptDriver
	theme  Theme
}

// NewPrompts constructs Prompts with the survey driver unless overridden.
func NewPrompts(options ...PromptOption) *Prompts {
	p := &Prompts{theme: DefaultTheme}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(nil)
	}
	return p
}

// Driver exposes the underlying driver.
func (p *Prompts) Driver() PromptDriver {
	return p.driver
}

// Confirm asks a yes/no question defaulting to no.
func (p *Prompts) Confirm(ctx context.Context, message string) (bool, error) {
	return p.driver.Confirm(ctx, ConfirmConfig{Message: message})
}

// Alert prints an error message.
func (p *Prompts) Alert(ctx context.Context, message string) {
	_ = p.driver.Info(ctx, p.theme.ErrorPrefix+message)
}

// Info prints a message.
func (p *Prompts) Info(ctx context.Context, message string) error {
	return p.driver.Info(ctx, p.theme.InfoPrefix+message)
}

// Choose offers a selection and returns the chosen index.
func (p *Prompts) Choose(ctx context.Context, message string, options []string) (int, error) {
	idx, err := p.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(options) {
		return -1, fmt.Errorf("tui: selection %d out of range", idx)
	}
	return idx, nil
}

// ClearAnswer empties an optional input. An empty answer keeps the default.
const ClearAnswer = "-"

// Fill prompts for every editable input of group, defaulting to the live
// value. Read-only and disabled inputs are skipped. Answers that violate the
// input's required or length constraints are reported and asked again.
func (p *Prompts) Fill(ctx context.Context, group *field.Group) error {
	if group == nil {
		return errors.New("tui: field group is nil")
	}
	for _, in := range group.Inputs() {
		cfg := in.Config()
		if cfg.ReadOnly || cfg.Disabled {
			continue
		}
		for {
			prompt := InputConfig{
				Message: promptLabel(cfg),
				Default: in.Value(),
				Help:    promptHelp(cfg, in.Value()),
			}
			var (
				answer string
				err    error
			)
			if cfg.Masked {
				answer, err = p.driver.Password(ctx, prompt)
			} else {
				answer, err = p.driver.Input(ctx, prompt)
			}
			if err != nil {
				return err
			}
			answer = strings.TrimSpace(answer)
			if answer == ClearAnswer {
				answer = ""
			}
			if problem := constraintProblem(cfg, answer); problem != "" {
				_ = p.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %s", p.theme.ErrorPrefix, cfg.Label, problem))
				continue
			}
			in.Commit(answer)
			break
		}
	}
	return nil
}

func promptLabel(cfg field.Config) string {
	label := cfg.Label
	if label == "" {
		label = cfg.Name
	}
	if cfg.Required {
		label += " *"
	}
	return label + ":"
}

func promptHelp(cfg field.Config, current string) string {
	if cfg.Required || current == "" {
		return cfg.Placeholder
	}
	hint := fmt.Sprintf("Enter %q to clear.", ClearAnswer)
	if cfg.Placeholder == "" {
		return hint
	}
	return cfg.Placeholder + " " + hint
}

func constraintProblem(cfg field.Config, value string) string {
	n := utf8.RuneCountInString(value)
	switch {
	case cfg.Required && n == 0:
		return "required"
	case cfg.MaxLength > 0 && n > cfg.MaxLength:
		return fmt.Sprintf("at most %d characters", cfg.MaxLength)
	case cfg.MinLength > 0 && n > 0 && n < cfg.MinLength:
		return fmt.Sprintf("at least %d characters", cfg.MinLength)
	}
	return ""
}
