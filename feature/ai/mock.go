package ai

import "context"

// MockProvider echoes the prompt. It serves as the default backend when no
// real provider credential is configured, keeping the endpoint usable in
// development.
type MockProvider struct{}

// Name returns the provider name.
func (MockProvider) Name() string { return "mock" }

// Complete returns a canned reply containing the prompt.
func (MockProvider) Complete(_ context.Context, text string) (string, error) {
	return "MOCK_REPLY: " + text, nil
}
