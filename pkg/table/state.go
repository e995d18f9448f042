package table

import "github.com/goliatone/go-northwind/pkg/render"

// Status enumerates the view states a table can be in.
type Status int

const (
	Loading Status = iota
	Error
	Empty
	Populated
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// Render maps the status onto the render package's vocabulary.
func (s Status) Render() render.Status {
	return render.Status(s.String())
}

// State is a snapshot of a table. Message is set only for Error; Records
// only for Populated.
type State[T any] struct {
	Status     Status
	Message    string
	Records    []T
	Generation uint64
}

// Len returns the number of records held by a populated state.
func (s State[T]) Len() int {
	return len(s.Records)
}

func (s State[T]) clone() State[T] {
	out := s
	if s.Records != nil {
		out.Records = make([]T, len(s.Records))
		copy(out.Records, s.Records)
	}
	return out
}
