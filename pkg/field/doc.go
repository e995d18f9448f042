// Package field implements the labeled text input used by the record editor.
// An Input keeps its configuration (the attributes) apart from its live value,
// and forwards input/change notifications to the Group that owns it so a
// container can listen once instead of wiring every field.
package field
