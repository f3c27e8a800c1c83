package ai

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postText(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("POST", "/ai/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp.StatusCode, parsed
}

func newTestApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(Config{}, zap.NewNop()), zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleText(t *testing.T) {
	status, body := postText(t, newTestApp(), `{"text":"describe this loft"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "MOCK_REPLY: describe this loft", body["reply"])
}

func TestHandleTextMissingText(t *testing.T) {
	status, body := postText(t, newTestApp(), `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "text is required", body["error"])
}

func TestHandleTextBadBody(t *testing.T) {
	status, _ := postText(t, newTestApp(), `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleTextUnknownProvider(t *testing.T) {
	status, _ := postText(t, newTestApp(), `{"text":"hi","provider":"anthropic"}`)
	assert.Equal(t, fiber.StatusBadGateway, status)
}
