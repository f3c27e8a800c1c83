package utils_test

import (
	"encoding/json"
	"testing"

	"listing-manager/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"Float64", 12.5, 12.5, true},
		{"Int", 42, 42, true},
		{"String", "19.99", 19.99, true},
		{"StringPadded", " 7.5 ", 7.5, true},
		{"JSONNumber", json.Number("3.14"), 3.14, true},
		{"Bytes", []byte("100"), 100, true},
		{"Garbage", "not-a-number", 0, false},
		{"Nil", nil, 0, false},
		{"Struct", struct{}{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := utils.ToFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"Valid", 120.0, 120.0},
		{"Rounded", 10.999, 11.0},
		{"String", "75.5", 75.5},
		{"Negative", -5.0, 0},
		{"Invalid", "abc", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.CoercePrice(tt.in))
		})
	}
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 105.0, utils.RoundPrice(100*1.05))
	assert.Equal(t, 0.1, utils.RoundPrice(0.1))
	assert.Equal(t, 33.33, utils.RoundPrice(33.3333))
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool("true"))
	assert.True(t, utils.ToBool("1"))
	assert.True(t, utils.ToBool(1))
	assert.False(t, utils.ToBool("no"))
	assert.False(t, utils.ToBool(nil))
}
