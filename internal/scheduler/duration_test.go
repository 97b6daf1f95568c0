package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1.50 Hrs", 90},
		{"0.70 Hrs", 40},
		{"2 Hrs", 120},
		{"0.75 Hrs", 45},
		{"1 hour", 60},
		{"", DefaultTaskMinutes},
		{"a while", DefaultTaskMinutes},
		{"0.04 Hrs", DefaultTaskMinutes}, // snaps to zero, falls back
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDurationMinutes(tt.raw), "raw=%q", tt.raw)
	}
}
