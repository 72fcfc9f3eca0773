package server_test

import (
	"testing"

	"gear-tracker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Configured", 8, 8 * 1024 * 1024},
		{"Zero", 0, server.DefaultBodyLimitMB * 1024 * 1024},
		{"Negative", -1, server.DefaultBodyLimitMB * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":9000", server.Config{Port: "9000"}.Address())
	assert.Equal(t, ":8080", server.Config{}.Address())
}
