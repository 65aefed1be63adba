package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims quotes and bearer prefix", `"Bearer gsk_abc123"`, "gsk_abc123"},
		{"strips escaped and real control characters", "gsk_abc\\n123\r\n\t", "gsk_abc123"},
		{"strips hidden unicode characters", "gsk_\u200babc\ufeff123", "gsk_abc123"},
		{"empty input", "   ", ""},
		{"quotes only", `""`, ""},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, normalizeAPIKey(tc.in))
		})
	}
}

func TestHasKey(t *testing.T) {
	t.Parallel()
	assert.True(t, HasKey(" fal-123 "))
	assert.False(t, HasKey("\t\n"))
}
