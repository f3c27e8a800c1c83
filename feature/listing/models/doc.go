// Package models defines the listing entity and the request shapes accepted
// by the listing HTTP surface.
package models
