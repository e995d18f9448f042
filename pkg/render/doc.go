// Package render defines the renderer contract and the view models renderers
// consume. View models are plain data built by pure functions (see the admin
// package), so every visual state can be asserted without a browser. Strings
// that originate from the remote store pass through PlainText before they
// reach a view.
package render
