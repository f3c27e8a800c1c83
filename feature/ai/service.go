package ai

import (
	"context"

	"go.uber.org/zap"
)

// Service routes completion requests to the configured provider.
type Service struct {
	registry *Registry
	active   string
	logger   *zap.Logger
}

// NewService builds the provider registry from the config. The mock provider
// is always available; the OpenAI provider is registered only when an API
// key is present. A configured default that cannot be served falls back to
// mock.
func NewService(cfg Config, logger *zap.Logger) *Service {
	registry := NewRegistry()
	registry.Register(MockProvider{})

	active := cfg.Provider
	if active == "" {
		active = "mock"
	}

	if cfg.APIKey != "" {
		if p, err := NewOpenAIProvider(cfg); err == nil {
			registry.Register(p)
		} else {
			logger.Warn("Failed to initialize OpenAI provider", zap.Error(err))
		}
	}
	if _, err := registry.Lookup(active); err != nil {
		logger.Warn("Configured LLM provider unavailable, falling back to mock",
			zap.String("provider", active))
		active = "mock"
	}

	return &Service{registry: registry, active: active, logger: logger}
}

// Complete runs the prompt against the named provider, or the configured
// default when provider is empty.
func (s *Service) Complete(ctx context.Context, text, provider string) (string, error) {
	if provider == "" {
		provider = s.active
	}
	p, err := s.registry.Lookup(provider)
	if err != nil {
		return "", err
	}
	return p.Complete(ctx, text)
}
