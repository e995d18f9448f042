package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-northwind/pkg/field"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	selectIdx    []int
	infoMessages []string
	prompts      []InputConfig
	inputPos     int
	passPos      int
	confirmPos   int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestFillSkipsReadOnlyAndCommitsAnswers(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Acme Ltd", " Paris "}}
	prompts := NewPrompts(WithPromptDriver(driver))

	group := field.NewGroup(
		field.Config{Name: "customerId", Label: "Customer ID", Value: "7", ReadOnly: true},
		field.Config{Name: "customerName", Label: "Company Name", Value: "Acme", Required: true},
		field.Config{Name: "city", Label: "City", Value: "Berlin"},
	)
	var changes []string
	group.Listen(func(evt field.Event) { changes = append(changes, evt.Name) })

	if err := prompts.Fill(context.Background(), group); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]string{"customerId": "7", "customerName": "Acme Ltd", "city": "Paris"}
	if diff := cmp.Diff(want, group.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"customerName", "city"}, changes); diff != "" {
		t.Fatalf("change events mismatch (-want +got):\n%s", diff)
	}
	if driver.prompts[0].Message != "Company Name *:" || driver.prompts[0].Default != "Acme" {
		t.Fatalf("unexpected first prompt %+v", driver.prompts[0])
	}
}

func TestFillRepromptsOnConstraintViolation(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", "ABCDEFGHIJKL", "Oslo"}}
	prompts := NewPrompts(WithPromptDriver(driver))

	group := field.NewGroup(field.Config{Name: "city", Label: "City", Required: true, MaxLength: 10})
	if err := prompts.Fill(context.Background(), group); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if got := group.Values()["city"]; got != "Oslo" {
		t.Fatalf("expected Oslo, got %q", got)
	}
	want := []string{"! Invalid City: required", "! Invalid City: at most 10 characters"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestFillClearsOptionalInputWithClearAnswer(t *testing.T) {
	driver := &stubDriver{inputs: []string{" - ", "-", "-", "Ana"}}
	prompts := NewPrompts(WithPromptDriver(driver))

	group := field.NewGroup(
		field.Config{Name: "region", Label: "Region", Value: "BC"},
		field.Config{Name: "fax", Label: "Fax", Value: "030-0076545"},
		field.Config{Name: "contactName", Label: "Contact Name", Value: "Maria", Required: true},
	)
	if err := prompts.Fill(context.Background(), group); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]string{"region": "", "fax": "", "contactName": "Ana"}
	if diff := cmp.Diff(want, group.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"! Invalid Contact Name: required"}, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if got := driver.prompts[0].Help; got != `Enter "-" to clear.` {
		t.Fatalf("unexpected help for optional input %q", got)
	}
	if got := driver.prompts[2].Help; got != "" {
		t.Fatalf("required input should not offer clearing, got %q", got)
	}
}

func TestFillUsesPasswordForMaskedInputs(t *testing.T) {
	driver := &stubDriver{passwords: []string{"s3cret"}}
	prompts := NewPrompts(WithPromptDriver(driver))

	group := field.NewGroup(field.Config{Name: "token", Label: "Token", Masked: true})
	if err := prompts.Fill(context.Background(), group); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if driver.passPos != 1 || driver.inputPos != 0 {
		t.Fatalf("masked input should use the password prompt")
	}
}

func TestFillPropagatesAbort(t *testing.T) {
	prompts := NewPrompts(WithPromptDriver(&stubDriver{}))
	group := field.NewGroup(field.Config{Name: "city"})
	if err := prompts.Fill(context.Background(), group); err == nil {
		t.Fatalf("expected driver error to propagate")
	}
}

func TestConfirmAlertAndChoose(t *testing.T) {
	driver := &stubDriver{confirm: []bool{true}, selectIdx: []int{1, 5}}
	prompts := NewPrompts(WithPromptDriver(driver), WithPromptTheme(Theme{ErrorPrefix: "error: "}))

	ok, err := prompts.Confirm(context.Background(), "Are you sure you want to delete customer 7?")
	if err != nil || !ok {
		t.Fatalf("expected confirmation, got %v %v", ok, err)
	}

	prompts.Alert(context.Background(), "Error deleting customer: boom")
	if diff := cmp.Diff([]string{"error: Error deleting customer: boom"}, driver.infoMessages); diff != "" {
		t.Fatalf("alert mismatch (-want +got):\n%s", diff)
	}

	idx, err := prompts.Choose(context.Background(), "Action", []string{"List", "Edit"})
	if err != nil || idx != 1 {
		t.Fatalf("expected index 1, got %d %v", idx, err)
	}
	if _, err := prompts.Choose(context.Background(), "Action", []string{"List"}); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestTranslateSurveyInterrupt(t *testing.T) {
	if err := translateSurveyErr(errors.New("other")); errors.Is(err, ErrAborted) {
		t.Fatalf("unexpected abort translation")
	}
}
