// Package schema loads customer field metadata (labels, lengths, required
// and read-only flags, row layout) from an OpenAPI document. The bundled
// document describes the remote store; a replacement can be loaded from disk.
//
// Presentation hints live under the x-northwind extension of each property:
//
//	x-northwind:
//	  label: Company Name
//	  order: 20
//	  row: locality
package schema
