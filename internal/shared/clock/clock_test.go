package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	c := NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.AddDays(8)
	assert.Equal(t, time.Date(2025, 5, 9, 10, 0, 0, 0, time.UTC), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestSystem_UTC(t *testing.T) {
	assert.Equal(t, time.UTC, System{}.Now().Location())
}
