package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJunk(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"???", true},
		{"---", true},
		{"n/a", true},
		{"N/A", true},
		{"unknown", true},
		{" UNKNOWN ", true},
		{"Remove This Ability", true},
		{"", true},
		{"   ", true},
		{"Pikachu", false},
		{"na", false},
		{"unknowns", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsJunk(tt.in), "IsJunk(%q)", tt.in)
	}
}
