package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	var c Counters

	c.SetTotal(10)
	c.IncProcessed()
	c.IncProcessed()
	c.IncFound()

	assert.Equal(t, int64(10), c.Total())
	assert.Equal(t, int64(2), c.Processed())
	assert.Equal(t, int64(1), c.Found())
}

func TestReset(t *testing.T) {
	var c Counters
	c.SetTotal(5)
	c.IncProcessed()
	c.IncFound()

	c.Reset()

	assert.Zero(t, c.Total())
	assert.Zero(t, c.Processed())
	assert.Zero(t, c.Found())
}

func TestStartRunning(t *testing.T) {
	var c Counters

	assert.False(t, c.Running())
	assert.True(t, c.StartRunning(), "first claim should succeed")
	assert.True(t, c.Running())
	assert.False(t, c.StartRunning(), "second claim should fail while running")

	c.SetRunning(false)
	assert.True(t, c.StartRunning(), "claim should succeed again after release")
}
