package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE164NormalizerClean(t *testing.T) {
	n := NewE164Normalizer()

	tests := []struct {
		name     string
		raw      string
		region   string
		expected string
	}{
		{"north american with punctuation", "(514) 555-0100", "CA", "+15145550100"},
		{"already e164", "+15145550100", "CA", "+15145550100"},
		{"spaces and dashes", "514 555-0100", "CA", "+15145550100"},
		{"empty", "", "CA", ""},
		{"whitespace only", "   ", "CA", ""},
		{"too short to validate", "123", "CA", "123"},
		{"letters stripped then invalid", "ext. 12", "CA", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Clean(tt.raw, tt.region))
		})
	}

	assert.True(t, n.Enhanced())
}

func TestE164NormalizerIdempotent(t *testing.T) {
	n := NewE164Normalizer()
	once := n.Clean("(514) 555-0100", "CA")
	assert.Equal(t, once, n.Clean(once, "CA"))
}

func TestDigitStripClean(t *testing.T) {
	n := NewDigitStrip()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"strips punctuation", "(514) 555-0100", "5145550100"},
		{"keeps leading plus", "+1 514 555 0100", "+15145550100"},
		{"drops inner plus", "514+555", "514555"},
		{"empty", "", ""},
		{"no digits", "n/a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Clean(tt.raw, "CA"))
		})
	}

	assert.False(t, n.Enhanced())
}
