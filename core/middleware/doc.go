// Package middleware groups the HTTP middleware used by the server.
//
// Subpackages:
//   - rayid: assigns a unique ray ID to every incoming request for tracing.
package middleware
