package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"foo", true},
		{"_foo", true},
		{"foo-bar", true},
		{"foo.bar", true},
		{"foo_bar2", true},
		{"", false},
		{"2foo", false},
		{"-foo", false},
		{"foo bar", false},
		{"foo/bar", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsIdentifier(tt.value), "value: %q", tt.value)
	}
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a, b", JoinNonEmpty(", ", "a", "", "b"))
	assert.Equal(t, "a", JoinNonEmpty(", ", "a"))
	assert.Equal(t, "", JoinNonEmpty(", ", "", "  "))
}
