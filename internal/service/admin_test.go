package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	assert.Equal(t, 50.0, Trend(150, 100))
	assert.Equal(t, -25.0, Trend(75, 100))
	assert.Equal(t, 0.0, Trend(0, 0))
	assert.Equal(t, 0.0, Trend(500, 0), "empty previous window must not blow up")
	assert.Equal(t, -100.0, Trend(0, 40))
	assert.Equal(t, 33.3, Trend(4, 3), "rounded to one decimal")
}
