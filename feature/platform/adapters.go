package platform

import (
	"context"

	"listing-manager/core/dispatch"
	"listing-manager/core/utils"
)

// Built-in platform names.
const (
	Airbnb  = "airbnb"
	Booking = "booking"
	Vrbo    = "vrbo"
)

const (
	skipNoAPIKey   = "no_api_key"
	skipNoRemoteID = "no_remote_id"
)

// publishAdapter creates a listing on one external marketplace. The adapters
// are local stand-ins for the real marketplace APIs: they honor the skip
// contract (no credential → skipped, not an error) and report a remote id
// derived from the listing id.
//
// TODO: replace the stand-in bodies with the real marketplace clients once
// API access is provisioned.
type publishAdapter struct {
	name   string
	apiKey string
}

func (a *publishAdapter) Name() string { return a.name }

func (a *publishAdapter) Call(ctx context.Context, payload map[string]any) (map[string]any, error) {
	if a.apiKey == "" {
		return nil, dispatch.Skip(skipNoAPIKey)
	}
	id := utils.ToString(payload["id"])
	return map[string]any{
		"platform":  a.name,
		"status":    "created",
		"remote_id": a.name + "-" + id,
	}, nil
}

// removeAdapter deletes a previously published listing. The payload carries
// the platform→remote-id mapping recorded at publish time; a platform with
// no recorded remote id skips.
type removeAdapter struct {
	name   string
	apiKey string
}

func (a *removeAdapter) Name() string { return a.name }

func (a *removeAdapter) Call(ctx context.Context, payload map[string]any) (map[string]any, error) {
	if a.apiKey == "" {
		return nil, dispatch.Skip(skipNoAPIKey)
	}
	rid := remoteIDFor(payload, a.name)
	if rid == "" {
		return nil, dispatch.Skip(skipNoRemoteID)
	}
	return map[string]any{
		"platform":  a.name,
		"status":    "deleted",
		"remote_id": rid,
	}, nil
}

func remoteIDFor(payload map[string]any, name string) string {
	switch m := payload["remote_ids"].(type) {
	case map[string]string:
		return m[name]
	case map[string]any:
		if v, ok := m[name]; ok {
			return utils.ToString(v)
		}
		return ""
	default:
		return ""
	}
}
