// Package ai exposes a thin LLM proxy over a registry of named providers.
// Provider selection is a boundary concern: configuration picks the default,
// requests may override it, and the core never branches on a provider name.
package ai
