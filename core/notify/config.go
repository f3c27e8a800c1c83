package notify

// Config holds configuration for the outbound webhook notifier.
type Config struct {
	// BaseURL is the automation webhook base; the event name is appended as
	// a path segment (e.g. {base}/listing-created).
	BaseURL string `mapstructure:"base_url" default:"http://localhost:5678/webhook"`
	// APIURL is the automation platform's REST API base, used to trigger and
	// list workflows directly.
	APIURL string `mapstructure:"api_url" default:"http://localhost:5678/api/v1"`
	// APIKey, when set, is sent as a Bearer token on REST API calls.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds every outbound call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
