package customers

import (
	"sort"
	"strings"
)

// Draft holds in-progress editor values keyed by field name. A Draft is owned
// by a single open dialog and is never persisted except through a submit.
type Draft map[string]string

// Clone returns an independent copy of the draft.
func (d Draft) Clone() Draft {
	if d == nil {
		return nil
	}
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WithoutID returns a copy of the draft with the identifier key removed.
// Create payloads are always built through this helper.
func (d Draft) WithoutID() Draft {
	out := d.Clone()
	delete(out, IDField)
	return out
}

// Keys returns the draft keys in sorted order.
func (d Draft) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
