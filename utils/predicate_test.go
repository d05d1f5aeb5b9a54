package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 6))
	assert.True(t, IsInRange(0, 6, 6))
	assert.False(t, IsInRange(0, 7, 6))
	assert.False(t, IsInRange(0, -1, 6))
	assert.False(t, IsInRange(0, 0, -1))
	assert.True(t, IsInRange("a", "b", "c"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, -3, 6))
	assert.Equal(t, 6, Clamp(0, 9, 6))
	assert.Equal(t, 4, Clamp(0, 4, 6))
}
