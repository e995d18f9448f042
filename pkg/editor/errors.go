package editor

import "errors"

var (
	// ErrRecordNotFound is returned when an edit targets an identifier that is
	// not part of the last displayed collection.
	ErrRecordNotFound = errors.New("editor: record not found")
	// ErrNoDialog is returned by Submit when no dialog is open.
	ErrNoDialog = errors.New("editor: no dialog open")
)
