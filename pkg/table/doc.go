// Package table implements the data-bound table lifecycle: fetch, apply, and
// expose exactly one view state at a time. Rendering is left to pure view
// functions that consume State.
package table
