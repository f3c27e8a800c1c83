// Package listing implements the file-backed listing store and its HTTP
// surface.
//
// The collection of listings lives in a single JSON file that is only ever
// rewritten whole, via a temporary file and an atomic rename. A reader
// therefore always observes a complete collection. One mutex serializes all
// mutating operations; plain reads are lock-free and at worst one committed
// write behind.
//
// Writes are lenient by policy: an unparseable price collapses to 0 and a
// corrupt or missing storage file is treated as an empty collection.
package listing
