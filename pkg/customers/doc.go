// Package customers defines the records exchanged with the remote customer
// store and the Draft type that holds unsaved editor values. Records are
// disposable copies: the store assigns identifiers and owns every mutation.
package customers
