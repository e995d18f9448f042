package table

import (
	"context"
	"errors"
	"sync"
)

// Fetcher loads the full collection for a table.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Table owns the view state of one data-bound collection. A Refresh result
// is applied only when no newer Refresh has started in the meantime.
type Table[T any] struct {
	mu         sync.Mutex
	fetch      Fetcher[T]
	opts       Options[T]
	state      State[T]
	generation uint64
}

// New creates a table in the Loading state.
func New[T any](fetch Fetcher[T], opts ...Option[T]) (*Table[T], error) {
	if fetch == nil {
		return nil, errors.New("table: fetcher is required")
	}
	return &Table[T]{
		fetch: fetch,
		opts:  newOptions(opts...),
		state: State[T]{Status: Loading},
	}, nil
}

// Refresh enters Loading, runs the fetcher under the configured timeout and
// applies the outcome. The returned state is the table's state after the
// call, which is not this fetch's outcome when a newer fetch superseded it.
func (t *Table[T]) Refresh(ctx context.Context) State[T] {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.state = State[T]{Status: Loading, Generation: gen}
	loading := t.state.clone()
	t.mu.Unlock()
	t.notify(loading)

	fetchCtx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	records, err := t.fetch(fetchCtx)
	cancel()

	var next State[T]
	switch {
	case err != nil:
		next = State[T]{Status: Error, Message: err.Error(), Generation: gen}
	case len(records) == 0:
		next = State[T]{Status: Empty, Generation: gen}
	default:
		next = State[T]{Status: Populated, Records: records, Generation: gen}
	}

	t.mu.Lock()
	if gen != t.generation {
		current := t.state.clone()
		t.mu.Unlock()
		t.opts.Logger.Debug().
			Str("table", t.opts.Name).
			Uint64("generation", gen).
			Uint64("current", current.Generation).
			Msg("discarding superseded fetch")
		return current
	}
	t.state = next
	applied := t.state.clone()
	t.mu.Unlock()

	if err != nil {
		t.opts.Logger.Warn().
			Err(err).
			Str("table", t.opts.Name).
			Msg("fetch failed")
	}
	t.notify(applied)
	return applied
}

// State returns a copy of the current state.
func (t *Table[T]) State() State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.clone()
}

// Lookup searches the last applied collection. It returns false when the
// table is not populated.
func (t *Table[T]) Lookup(match func(T) bool) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	if match == nil || t.state.Status != Populated {
		return zero, false
	}
	for _, record := range t.state.Records {
		if match(record) {
			return record, true
		}
	}
	return zero, false
}

// Reset returns the table to Loading and invalidates in-flight fetches.
func (t *Table[T]) Reset() {
	t.mu.Lock()
	t.generation++
	t.state = State[T]{Status: Loading, Generation: t.generation}
	snapshot := t.state.clone()
	t.mu.Unlock()
	t.notify(snapshot)
}

func (t *Table[T]) notify(state State[T]) {
	if t.opts.OnChange != nil {
		t.opts.OnChange(state)
	}
}
