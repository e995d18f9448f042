// Package editor owns the record editor flow: at most one dialog open at a
// time, holding a draft that is discarded on close and persisted only through
// Submit.
package editor
