// Package client talks to the remote customer store. Every call applies the
// configured timeout, sends JSON, and turns non-2xx responses into a
// StatusError so callers can branch on the numeric status.
package client
