package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloor2Truncates(t *testing.T) {
	// 296 blocks / 144 = 2.0555... and must come out as 2.05, never 2.06
	assert.Equal(t, 2.05, Floor2(296.0/144.0))
	assert.Equal(t, 2.99, Floor2(2.9999))
	assert.Equal(t, 5.0, Floor2(5.0))
	assert.Equal(t, 0.0, Floor2(0))
	assert.Equal(t, 0.0, Floor2(0.009))
}
