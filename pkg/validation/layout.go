package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-northwind/pkg/schema"
)

// Issue represents a validation error with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

func (r *Result) add(issue Issue) {
	r.Valid = false
	r.Issues = append(r.Issues, issue)
}

// ValidateLayout checks raw as a layout document.
func ValidateLayout(ctx context.Context, src schema.Source, raw []byte) Result {
	result := Result{Valid: true}
	if src == nil {
		src = schema.SourceFromFile("layout.yaml")
	}

	doc, err := schema.NewDocument(src, raw)
	if err != nil {
		result.add(issueFromError(err))
		return result
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		result.add(issueFromError(err))
		return result
	}
	if spec.Components != nil {
		if ref, ok := spec.Components.Schemas[schema.CustomerSchema]; ok && ref != nil && ref.Value != nil {
			for _, issue := range lintHints(ref.Value) {
				result.add(issue)
			}
		}
	}
	if !result.Valid {
		return result
	}

	if _, err := schema.Load(ctx, doc); err != nil {
		result.add(issueFromError(err))
	}
	return result
}

func lintHints(customer *openapi3.Schema) []Issue {
	names := make([]string, 0, len(customer.Properties))
	for name := range customer.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []Issue
	for _, name := range names {
		ref := customer.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		raw, ok := ref.Value.Extensions[schema.ExtensionKey]
		if !ok {
			continue
		}
		pointer := "#/components/schemas/" + schema.CustomerSchema + "/properties/" + escapePointer(name) + "/" + schema.ExtensionKey
		hints, ok := raw.(map[string]any)
		if !ok {
			issues = append(issues, Issue{
				Path:    pointer,
				Field:   name,
				Message: fmt.Sprintf("%s must be an object, found %T", schema.ExtensionKey, raw),
			})
			continue
		}
		keys := make([]string, 0, len(hints))
		for key := range hints {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if message := checkHint(key, hints[key]); message != "" {
				issues = append(issues, Issue{Path: pointer + "/" + escapePointer(key), Field: name, Message: message})
			}
		}
	}
	return issues
}

func checkHint(key string, value any) string {
	switch key {
	case "label", "row", "autocomplete":
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("value for %q must be a string (got %T)", key, value)
		}
	case "order":
		switch value.(type) {
		case float64, int, int64:
		default:
			return fmt.Sprintf("value for %q must be a number (got %T)", key, value)
		}
	default:
		return fmt.Sprintf("unsupported UI extension key %q (supported: %s)", key, strings.Join(schema.HintKeys(), ", "))
	}
	return ""
}

func issueFromError(err error) Issue {
	if err == nil {
		return Issue{Message: "unknown error"}
	}
	msg := strings.TrimSpace(err.Error())
	path := extractJSONPointer(msg)
	if path != "" {
		msg = strings.Replace(msg, " at "+path, "", 1)
	}
	msg = strings.TrimPrefix(msg, "schema: ")
	msg = strings.TrimSpace(msg)

	return Issue{
		Path:    path,
		Field:   fieldPathFromPointer(path),
		Message: msg,
	}
}

func extractJSONPointer(message string) string {
	if message == "" {
		return ""
	}
	if idx := strings.LastIndex(message, "#/"); idx >= 0 {
		candidate := strings.Fields(message[idx:])
		if len(candidate) > 0 {
			return trimPointer(candidate[0])
		}
	}
	return ""
}

func trimPointer(pointer string) string {
	trimmed := strings.TrimRight(pointer, ".)];,:")
	return strings.TrimSpace(trimmed)
}

// fieldPathFromPointer reduces a pointer into the document to the dotted
// property path it concerns.
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(trimmed, "/")
	var out []string
	for idx := 0; idx < len(parts); idx++ {
		segment := unescapePointer(parts[idx])
		switch segment {
		case "components", "schemas":
			if segment == "schemas" && idx+1 < len(parts) {
				idx++
			}
		case "properties":
			if idx+1 < len(parts) {
				out = append(out, unescapePointer(parts[idx+1]))
				idx++
			}
		}
	}
	return strings.Join(out, ".")
}

func escapePointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~", "~0")
	return strings.ReplaceAll(segment, "/", "~1")
}

func unescapePointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}
