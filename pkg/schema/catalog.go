package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-northwind/pkg/customers"
	"github.com/goliatone/go-northwind/pkg/editor"
	"github.com/goliatone/go-northwind/pkg/field"
)

const (
	// CustomerSchema is the component describing a customer record.
	CustomerSchema = "Customer"

	// ExtensionKey holds the UI hints of a property.
	ExtensionKey = "x-northwind"
)

var hintKeys = []string{"autocomplete", "label", "order", "row"}

// HintKeys lists the keys accepted under ExtensionKey, sorted.
func HintKeys() []string {
	return append([]string(nil), hintKeys...)
}

// Property is the normalized metadata of one customer attribute.
type Property struct {
	Name         string
	Label        string
	Order        int
	Row          string
	Required     bool
	ReadOnly     bool
	MaxLength    int
	Autocomplete string
}

// Catalog holds the ordered customer properties. It implements
// editor.Layout.
type Catalog struct {
	source     Source
	properties []Property
}

var _ editor.Layout = (*Catalog)(nil)

// Load parses an OpenAPI document and extracts the Customer component.
func Load(ctx context.Context, doc Document) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load %s: %w", doc.Location(), err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("schema: validate %s: %w", doc.Location(), err)
	}

	if spec.Components == nil {
		return nil, fmt.Errorf("schema: %s has no components", doc.Location())
	}
	ref, ok := spec.Components.Schemas[CustomerSchema]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: %s does not define %q", doc.Location(), CustomerSchema)
	}

	properties, err := convertProperties(ref.Value)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", doc.Location(), err)
	}
	return &Catalog{source: doc.Source(), properties: properties}, nil
}

// Source reports where the catalog was loaded from.
func (c *Catalog) Source() Source {
	return c.source
}

// Properties returns the ordered property list.
func (c *Catalog) Properties() []Property {
	out := make([]Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// Property looks a property up by name.
func (c *Catalog) Property(name string) (Property, bool) {
	for _, prop := range c.properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return Property{}, false
}

// Label returns the display label for name, falling back to the name.
func (c *Catalog) Label(name string) string {
	if prop, ok := c.Property(name); ok && prop.Label != "" {
		return prop.Label
	}
	return name
}

// Fields returns input configurations for a dialog mode. Read-only
// properties are shown read-only when editing and omitted when creating.
func (c *Catalog) Fields(mode editor.Mode) []field.Config {
	configs := make([]field.Config, 0, len(c.properties))
	for _, prop := range c.properties {
		if prop.ReadOnly && mode == editor.ModeCreate {
			continue
		}
		configs = append(configs, field.Config{
			Label:        prop.Label,
			Name:         prop.Name,
			Required:     prop.Required,
			MaxLength:    prop.MaxLength,
			ReadOnly:     prop.ReadOnly,
			Autocomplete: prop.Autocomplete,
			Row:          prop.Row,
		})
	}
	return configs
}

func convertProperties(src *openapi3.Schema) ([]Property, error) {
	if len(src.Properties) == 0 {
		return nil, errors.New("customer schema has no properties")
	}
	if _, ok := src.Properties[customers.IDField]; !ok {
		return nil, fmt.Errorf("customer schema is missing %q", customers.IDField)
	}

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	properties := make([]Property, 0, len(src.Properties))
	for name, ref := range src.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		value := ref.Value
		hints := extensionMap(value.Extensions)
		prop := Property{
			Name:         name,
			Label:        stringHint(hints, "label", name),
			Order:        intHint(hints, "order"),
			Row:          stringHint(hints, "row", ""),
			Autocomplete: stringHint(hints, "autocomplete", ""),
			Required:     required[name],
			ReadOnly:     value.ReadOnly,
		}
		if value.MaxLength != nil {
			prop.MaxLength = int(*value.MaxLength)
		}
		properties = append(properties, prop)
	}

	sort.SliceStable(properties, func(i, j int) bool {
		if properties[i].Order != properties[j].Order {
			return properties[i].Order < properties[j].Order
		}
		return properties[i].Name < properties[j].Name
	})
	return properties, nil
}

func extensionMap(ext map[string]any) map[string]any {
	if len(ext) == 0 {
		return nil
	}
	if mapped, ok := ext[ExtensionKey].(map[string]any); ok {
		return mapped
	}
	return nil
}

func stringHint(hints map[string]any, key, fallback string) string {
	if value, ok := hints[key].(string); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func intHint(hints map[string]any, key string) int {
	switch value := hints[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	}
	return 0
}
