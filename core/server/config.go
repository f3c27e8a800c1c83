package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AllowOrigins is a comma-separated list of origins allowed by CORS.
	AllowOrigins string `mapstructure:"allow_origins" default:"http://localhost,http://localhost:3000"`
}

// Origins returns the configured CORS origins as a slice.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
