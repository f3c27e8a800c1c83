package platform

// Config holds the per-platform credentials and the fan-out timeout. A
// platform with an empty API key stays registered but skips every call.
type Config struct {
	AirbnbAPIKey  string `mapstructure:"airbnb_api_key" default:""`
	BookingAPIKey string `mapstructure:"booking_api_key" default:""`
	VrboAPIKey    string `mapstructure:"vrbo_api_key" default:""`
	// TimeoutSeconds bounds each per-platform call during a fan-out.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
