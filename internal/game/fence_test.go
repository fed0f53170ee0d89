package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"```json{\"a\":1}```", `{"a":1}`},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, stripCodeFence(tc.in), "input %q", tc.in)
	}
}

func TestContainsExactlyOnce(t *testing.T) {
	assert.True(t, containsExactlyOnce([]string{"a", "b", "c"}, "b"))
	assert.False(t, containsExactlyOnce([]string{"a", "b", "b"}, "b"))
	assert.False(t, containsExactlyOnce([]string{"a", "c"}, "b"))
}
