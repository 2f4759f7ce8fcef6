package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.AcquireMemory(context.Background(), 50))
	assert.Equal(t, int64(50), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(context.Background(), 40))
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Over budget
	assert.False(t, c.TryAcquireMemory(20))
	assert.Equal(t, int64(90), c.MemoryUsage())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.AcquireMemory(ctx, 20)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(context.Background(), 20))
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireMemory(context.Background(), 1000))
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Slots(t *testing.T) {
	c := NewController(Config{MaxConcurrent: 2})

	require.NoError(t, c.AcquireSlot(context.Background()))
	require.NoError(t, c.AcquireSlot(context.Background()))
	assert.Equal(t, int64(2), c.Active())

	assert.False(t, c.TryAcquireSlot())

	c.ReleaseSlot()
	assert.True(t, c.TryAcquireSlot())
	assert.Equal(t, int64(2), c.Active())
}

func TestController_Admit(t *testing.T) {
	c := NewController(Config{MaxConcurrent: 1, MemoryLimitBytes: 64})

	require.NoError(t, c.Admit(context.Background(), 32))
	assert.Equal(t, int64(1), c.Active())
	assert.Equal(t, int64(32), c.MemoryUsage())

	assert.ErrorIs(t, c.TryAdmit(8), ErrRateLimited)

	c.Done(32)
	assert.Equal(t, int64(0), c.Active())
	assert.Equal(t, int64(0), c.MemoryUsage())

	// Slot is returned when memory cannot be reserved.
	assert.ErrorIs(t, c.TryAdmit(128), ErrRateLimited)
	assert.Equal(t, int64(0), c.Active())
}

func TestController_AdmitCanceled(t *testing.T) {
	c := NewController(Config{MaxConcurrent: 1})
	require.NoError(t, c.Admit(context.Background(), 0))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Admit(ctx, 0), context.DeadlineExceeded)
	assert.Equal(t, int64(1), c.Active())
}

func TestController_Rate(t *testing.T) {
	c := NewController(Config{MaxConcurrent: 4, RequestsPerSecond: 0.001, Burst: 1})

	require.NoError(t, c.TryAdmit(0))
	c.Done(0)

	assert.ErrorIs(t, c.TryAdmit(0), ErrRateLimited)
	assert.Equal(t, int64(0), c.Active())
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.Admit(context.Background(), 100))
	require.NoError(t, c.TryAdmit(100))
	c.Done(100)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, Config{}, c.Config())
}

func TestLabelBytes(t *testing.T) {
	assert.Equal(t, int64(0), LabelBytes(0))
	assert.Equal(t, int64(320), LabelBytes(10))
}
