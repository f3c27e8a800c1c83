package server_test

import (
	"testing"

	"listing-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Origins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{"Single", "http://localhost", []string{"http://localhost"}},
		{"Multiple", "http://localhost, http://localhost:3000", []string{"http://localhost", "http://localhost:3000"}},
		{"Empty", "", []string{}},
		{"TrailingComma", "http://localhost,", []string{"http://localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{AllowOrigins: tt.origins}
			assert.Equal(t, tt.want, c.Origins())
		})
	}
}
