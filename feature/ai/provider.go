package ai

import (
	"context"
	"fmt"
	"sync"
)

// Config holds configuration for the LLM proxy.
type Config struct {
	// Provider selects the default provider (openai or mock).
	Provider string `mapstructure:"provider" default:"mock"`
	// Model is the model name forwarded to the provider.
	Model string `mapstructure:"model" default:"gpt-4o-mini"`
	// APIKey authenticates against the provider. With no key configured the
	// feature falls back to the mock provider.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL overrides the provider endpoint, e.g. for OpenAI-compatible
	// local APIs.
	BaseURL string `mapstructure:"base_url" default:""`
}

// Provider is one LLM backend. Selection happens by name at the boundary;
// nothing in the core depends on a concrete provider.
type Provider interface {
	Name() string
	Complete(ctx context.Context, text string) (string, error)
}

// Registry holds named providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its name.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider: %s", name)
	}
	return p, nil
}
