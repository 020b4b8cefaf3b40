package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "send_tr",
			expected: "send_tr",
		},
		{
			name:     "string with whitespace",
			input:    "  connect  ",
			expected: "connect",
		},
		{
			name:     "string with newline",
			input:    "Ton\nkeeper",
			expected: "Tonkeeper",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "start\x00\x01",
			expected: "start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClaimLock(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)

	first := h.claimLock(1)
	second := h.claimLock(1)
	other := h.claimLock(2)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)

	// Non-reentrant: while held, a second press must not proceed
	first.Lock()
	assert.False(t, second.TryLock())
	first.Unlock()
	assert.True(t, second.TryLock())
	second.Unlock()
}
