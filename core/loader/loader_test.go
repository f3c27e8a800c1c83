package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestLoadAllSkipsDisabledFeatures(t *testing.T) {
	enabled := &fakeFeature{name: "a", enabled: true}
	disabled := &fakeFeature{name: "b", enabled: false}

	m := NewManager()
	m.Register(enabled)
	m.Register(disabled)

	require.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestLoadAllStopsOnError(t *testing.T) {
	failing := &fakeFeature{name: "a", enabled: true, err: errors.New("boom")}
	next := &fakeFeature{name: "b", enabled: true}

	m := NewManager()
	m.Register(failing)
	m.Register(next)

	err := m.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to load feature "a"`)
	assert.False(t, next.loaded)
}
