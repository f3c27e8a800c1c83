// Package utils provides type conversion helpers shared across features,
// most importantly the lenient price coercion used by the listing store.
package utils
