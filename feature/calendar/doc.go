// Package calendar syncs each listing's availability flag from the remote
// availability reported by the platform it is published on.
package calendar
