package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{14}-[0-9A-F]{8}$`)

	number := GenerateOrderNumber()
	assert.True(t, pattern.MatchString(number), "unexpected format: %s", number)
}

func TestGenerateOrderNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := GenerateOrderNumber()
		require.False(t, seen[number], "duplicate order number: %s", number)
		seen[number] = true
	}
}
