// Package installshim serves the files that make the admin installable: a
// service worker that forwards every fetch to the network unchanged and a web
// app manifest describing the application.
package installshim
