package ids

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		id := New()
		if !IsValid(id) {
			t.Errorf("New() = %q, not a valid identifier", id)
		}

		parts := strings.Split(id, "-")
		if len(parts) != 2 {
			t.Fatalf("New() = %q, want timestamp-random", id)
		}
		if len(parts[1]) != randomLen {
			t.Errorf("random part %q has length %d, want %d", parts[1], len(parts[1]), randomLen)
		}
	})

	t.Run("uniqueness", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := New()
			if seen[id] {
				t.Fatalf("duplicate identifier %q after %d generations", id, i)
			}
			seen[id] = true
		}
	})
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"generated", New(), true},
		{"typical", "m3kf02x-a81bz0q", true},
		{"empty", "", false},
		{"no dash", "m3kf02xa81bz0q", false},
		{"short random part", "m3kf02x-a81bz", false},
		{"uppercase", "M3KF02X-A81BZ0Q", false},
		{"uuid", "11111111-1111-1111-1111-111111111111", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.id); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
