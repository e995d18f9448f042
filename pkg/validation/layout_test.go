package validation

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-northwind/pkg/schema"
)

const layoutTemplate = `openapi: 3.0.3
info:
  title: layout
  version: "1.0"
paths: {}
components:
  schemas:
    Customer:
      type: object
      required: [customerName]
      properties:
        customerId:
          type: integer
          readOnly: true
        customerName:
          type: string
          x-northwind:
%s
`

func layout(hints string) []byte {
	return []byte(strings.Replace(layoutTemplate, "%s", hints, 1))
}

func TestValidateLayout_Valid(t *testing.T) {
	raw := layout("            label: Company Name\n            order: 20")
	result := ValidateLayout(context.Background(), schema.SourceFromFile("layout.yaml"), raw)
	if !result.Valid {
		t.Fatalf("expected layout to be valid: %#v", result.Issues)
	}
}

func TestValidateLayout_HintIssues(t *testing.T) {
	raw := layout("            label: 12\n            color: red\n            order: first")
	result := ValidateLayout(context.Background(), nil, raw)
	if result.Valid {
		t.Fatalf("expected layout to be invalid")
	}

	got := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Field != "customerName" {
			t.Fatalf("unexpected field %q", issue.Field)
		}
		got = append(got, issue.Path)
	}
	base := "#/components/schemas/Customer/properties/customerName/x-northwind/"
	want := []string{base + "color", base + "label", base + "order"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issue paths mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(result.Issues[0].Message, "supported: autocomplete, label, order, row") {
		t.Fatalf("unexpected message %q", result.Issues[0].Message)
	}
}

func TestValidateLayout_MissingIdentifier(t *testing.T) {
	raw := []byte(strings.Replace(string(layout("            label: Company Name")), "        customerId:\n          type: integer\n          readOnly: true\n", "", 1))
	result := ValidateLayout(context.Background(), nil, raw)
	if result.Valid {
		t.Fatalf("expected missing identifier to be reported")
	}
	if !strings.Contains(result.Issues[0].Message, "customerId") {
		t.Fatalf("unexpected message %q", result.Issues[0].Message)
	}
}

func TestValidateLayout_EmptyPayload(t *testing.T) {
	result := ValidateLayout(context.Background(), nil, nil)
	if result.Valid || len(result.Issues) != 1 {
		t.Fatalf("expected a single issue, got %#v", result)
	}
}

func TestFieldPathFromPointer(t *testing.T) {
	cases := []struct {
		pointer string
		want    string
	}{
		{"", ""},
		{"#/components/schemas/Customer/properties/customerName/x-northwind", "customerName"},
		{"#/components/schemas/Customer/properties/a~1b", "a/b"},
	}
	for _, tc := range cases {
		if got := fieldPathFromPointer(tc.pointer); got != tc.want {
			t.Fatalf("fieldPathFromPointer(%q) = %q, want %q", tc.pointer, got, tc.want)
		}
	}
}
