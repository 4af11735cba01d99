package nlu

import "testing"

func TestNormalizeDestination(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Rom reisen", "Rom"},
		{"nach Paris", "Paris"},
		{"Berlin", "Berlin"},
		{"suchen finden Hamburg", "Hamburg"},
		{"zu München", "München"},
		{"  London  ", "London"},
		{"", ""},
		{"NACH Wien", "Wien"},
	}

	for _, tt := range tests {
		if got := NormalizeDestination(tt.raw); got != tt.want {
			t.Errorf("NormalizeDestination(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
