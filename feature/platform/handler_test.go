package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"listing-manager/core/loader"
	"listing-manager/feature/listing"
	"listing-manager/feature/listing/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, cfg Config) (*fiber.App, *listing.Service) {
	t.Helper()

	store := listing.NewStore(filepath.Join(t.TempDir(), "listings.json"))
	svc := listing.NewService(store, nil, zap.NewNop())

	app := fiber.New()
	NewHandler(svc, NewPublisher(cfg, zap.NewNop()), zap.NewNop()).RegisterRoutes(app)
	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestHandlePublishRecordsRemoteIDs(t *testing.T) {
	app, svc := setupTestApp(t, allKeys())
	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft"})
	require.NoError(t, err)

	status, body := doJSON(t, app, "POST", "/listings/"+l.ID+"/publish", nil)
	require.Equal(t, fiber.StatusOK, status)

	remoteIDs, ok := body["remote_ids"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "airbnb-"+l.ID, remoteIDs[Airbnb])
	assert.Equal(t, "booking-"+l.ID, remoteIDs[Booking])
	assert.Equal(t, "vrbo-"+l.ID, remoteIDs[Vrbo])

	// The mapping is persisted on the listing for the later unpublish.
	got, err := svc.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, "airbnb-"+l.ID, got.RemoteIDs()[Airbnb])
}

func TestHandlePublishSubset(t *testing.T) {
	app, svc := setupTestApp(t, allKeys())
	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft"})
	require.NoError(t, err)

	status, body := doJSON(t, app, "POST", "/listings/"+l.ID+"/publish",
		map[string]any{"platforms": []string{Vrbo}})
	require.Equal(t, fiber.StatusOK, status)

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)

	got, err := svc.Get(context.Background(), l.ID)
	require.NoError(t, err)
	ids := got.RemoteIDs()
	assert.Equal(t, "vrbo-"+l.ID, ids[Vrbo])
	assert.NotContains(t, ids, Airbnb)
}

func TestHandlePublishNotFound(t *testing.T) {
	app, _ := setupTestApp(t, allKeys())

	status, _ := doJSON(t, app, "POST", "/listings/missing/publish", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandlePublishWithoutCredentialsSkips(t *testing.T) {
	app, svc := setupTestApp(t, Config{})
	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft"})
	require.NoError(t, err)

	status, body := doJSON(t, app, "POST", "/listings/"+l.ID+"/publish", nil)
	require.Equal(t, fiber.StatusOK, status)

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	for _, raw := range results {
		r := raw.(map[string]any)
		assert.Equal(t, "skipped", r["outcome"])
	}

	got, err := svc.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RemoteIDs())
}

func TestHandleUnpublishClearsRemoteIDs(t *testing.T) {
	app, svc := setupTestApp(t, allKeys())
	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft"})
	require.NoError(t, err)

	status, _ := doJSON(t, app, "POST", "/listings/"+l.ID+"/publish", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body := doJSON(t, app, "POST", "/listings/"+l.ID+"/unpublish", nil)
	require.Equal(t, fiber.StatusOK, status)

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)
	for _, raw := range results {
		r := raw.(map[string]any)
		assert.Equal(t, "success", r["outcome"])
	}

	got, err := svc.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RemoteIDs())
}

func TestHandleUnpublishNeverPublished(t *testing.T) {
	app, svc := setupTestApp(t, allKeys())
	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft"})
	require.NoError(t, err)

	status, body := doJSON(t, app, "POST", "/listings/"+l.ID+"/unpublish", nil)
	require.Equal(t, fiber.StatusOK, status)

	results, ok := body["results"].([]any)
	require.True(t, ok)
	for _, raw := range results {
		r := raw.(map[string]any)
		assert.Equal(t, "skipped", r["outcome"])
		assert.Equal(t, "no_remote_id", r["reason"])
	}
}

// Assembles the platform and listing features onto one router the way the
// server does: platform first, so the static /listings/compare route is
// matched ahead of the listing feature's /listings/:id.
func TestCompareNotShadowedByListingRoutes(t *testing.T) {
	listingFeature := listing.NewFeature(
		listing.Config{Path: filepath.Join(t.TempDir(), "listings.json")}, nil, zap.NewNop())
	platformFeature := NewFeature(allKeys(), listingFeature.Service(), zap.NewNop())

	mgr := loader.NewManager()
	mgr.Register(platformFeature)
	mgr.Register(listingFeature)

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app.Group("/api/v1")))

	status, body := doJSON(t, app, "GET", "/api/v1/listings/compare?address=12+Main+St", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "12 Main St", body["address"])

	// The listing routes still resolve normally.
	l, err := listingFeature.Service().Create(context.Background(), models.CreateRequest{Title: "Loft"})
	require.NoError(t, err)
	status, body = doJSON(t, app, "GET", "/api/v1/listings/"+l.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, l.ID, body["id"])

	status, _ = doJSON(t, app, "GET", "/api/v1/listings/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandleCompare(t *testing.T) {
	app, _ := setupTestApp(t, allKeys())

	status, body := doJSON(t, app, "GET", "/listings/compare?address=12+Main+St", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "12 Main St", body["address"])

	competitors, ok := body["competitors"].([]any)
	require.True(t, ok)
	assert.Len(t, competitors, 3)
}
