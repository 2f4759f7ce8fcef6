// Package resource provides admission control for segmentation requests.
package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by TryAdmit when the rate limit, the slots or
// the memory budget leave no room for the request.
var ErrRateLimited = errors.New("rate limited")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for working memory of in-flight
	// segmentations (labels and sample buffers).
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrent is the maximum number of segmentations running at once.
	// If 0, defaults to 1.
	MaxConcurrent int64

	// RequestsPerSecond limits how often segmentations may start.
	// If 0, unlimited.
	RequestsPerSecond float64

	// Burst is the rate limiter burst. If 0, defaults to 1.
	Burst int
}

// Controller manages global resources (memory, concurrency, request rate).
// A nil *Controller admits everything.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	slots  *semaphore.Weighted
	active atomic.Int64

	// Rate
	limiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Controller{
		cfg:   cfg,
		slots: semaphore.NewWeighted(cfg.MaxConcurrent),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	return c
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// Admit waits for the rate limiter, a concurrency slot and bytes of working
// memory, in that order. On success the caller must call Done with the same
// byte count.
func (c *Controller) Admit(ctx context.Context, bytes int64) error {
	if c == nil {
		return nil
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if err := c.AcquireSlot(ctx); err != nil {
		return err
	}
	if err := c.AcquireMemory(ctx, bytes); err != nil {
		c.ReleaseSlot()
		return err
	}
	return nil
}

// TryAdmit is the non-blocking form of Admit.
func (c *Controller) TryAdmit(bytes int64) error {
	if c == nil {
		return nil
	}
	if c.limiter != nil && !c.limiter.Allow() {
		return ErrRateLimited
	}
	if !c.TryAcquireSlot() {
		return ErrRateLimited
	}
	if !c.TryAcquireMemory(bytes) {
		c.ReleaseSlot()
		return ErrRateLimited
	}
	return nil
}

// Done releases what Admit acquired.
func (c *Controller) Done(bytes int64) {
	if c == nil {
		return
	}
	c.ReleaseMemory(bytes)
	c.ReleaseSlot()
}

// AcquireMemory attempts to reserve memory.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return false
		}
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireSlot reserves a segmentation slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireSlot(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	c.active.Add(1)
	return nil
}

// TryAcquireSlot reserves a segmentation slot without blocking.
func (c *Controller) TryAcquireSlot() bool {
	if c == nil {
		return true
	}
	if !c.slots.TryAcquire(1) {
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseSlot releases a segmentation slot.
func (c *Controller) ReleaseSlot() {
	if c == nil {
		return
	}
	c.active.Add(-1)
	c.slots.Release(1)
}

// Active returns the number of held slots.
func (c *Controller) Active() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}

// LabelBytes estimates the working memory of a segmentation over n pixels:
// one int label per pixel plus a float64 color per pixel for sampling.
func LabelBytes(n int) int64 {
	if n <= 0 {
		return 0
	}
	return int64(n) * (8 + 3*8)
}
