// Package validation checks layout documents before they are served: the
// OpenAPI payload must load and validate, the Customer component must build a
// catalog, and every UI hint must use a known key with a value of the right
// type. Issues carry the JSON pointer and the property they concern.
package validation
