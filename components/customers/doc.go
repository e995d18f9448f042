// Package customers serves the customer directory admin over HTTP: the page
// with both tables, table fragments, the create/edit dialog, the delete
// confirmation, static assets and the install shim.
//
// Every request builds its own tables against the configured backend, so the
// handler keeps no per-user state. Responses are negotiated through the
// renderer registry using the Accept header; HTML is the default.
package customers
