package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewObjectID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewObjectID()
		require.True(t, IsObjectID(id), "generated id %q should be well-formed", id)
		require.False(t, seen[id], "generated ids should not repeat")
		seen[id] = true
	}
}

func TestIsObjectID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid lowercase", "64a1f2c3d4e5f60718293a4b", true},
		{"valid uppercase", "64A1F2C3D4E5F60718293A4B", true},
		{"too short", "64a1f2c3d4e5f60718293a4", false},
		{"too long", "64a1f2c3d4e5f60718293a4b0", false},
		{"non-hex character", "64a1f2c3d4e5f60718293a4g", false},
		{"custom id", "S001", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsObjectID(tt.input))
		})
	}
}
