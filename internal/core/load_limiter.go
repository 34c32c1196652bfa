package core

// load_limiter.go bounds how many route profiles are read and parsed at once.
//
// Every profile load reads a whole elevation CSV into memory before parsing,
// so the limiter caps parallel loads with a semaphore. When all slots are
// occupied, new loads wait up to maxWait before failing with ErrTooManyLoads.
//
// WaitForDrain blocks until all active loads complete and is used on shutdown.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyLoads is returned when all load slots are occupied and the wait
// timeout expires. Clients should retry after a short delay.
var ErrTooManyLoads = errors.New("too many concurrent loads, please try again later")

// DefaultMaxConcurrentLoads is the default limit for parallel profile loads.
const DefaultMaxConcurrentLoads = 8

// DefaultMaxWaitTime is how long to wait for a slot before rejecting.
const DefaultMaxWaitTime = 5 * time.Second

// LoadLimiter controls concurrent profile loads using a semaphore.
type LoadLimiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewLoadLimiter creates a limiter that allows at most maxConcurrent simultaneous loads.
// Loads that cannot acquire a slot within maxWait receive ErrTooManyLoads.
func NewLoadLimiter(maxConcurrent int, maxWait time.Duration) *LoadLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentLoads
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}

	return &LoadLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
		maxWait:   maxWait,
	}
}

// Acquire takes a load slot, waiting up to maxWait.
// The caller MUST call Release() when the load completes (use defer).
func (l *LoadLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		activeLoads.Inc()
		return nil

	case <-waitCtx.Done():
		// The caller's own cancellation wins over our wait timeout.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyLoads
	}
}

// TryAcquire takes a slot without blocking and reports whether it succeeded.
func (l *LoadLimiter) TryAcquire() bool {
	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		activeLoads.Inc()
		return true
	default:
		return false
	}
}

// Release releases a previously acquired slot.
// Must be called exactly once for each successful Acquire/TryAcquire.
func (l *LoadLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()
	activeLoads.Dec()

	<-l.semaphore
}

// ActiveCount returns the number of loads in progress.
func (l *LoadLimiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// MaxConcurrent returns the maximum allowed concurrent loads.
func (l *LoadLimiter) MaxConcurrent() int {
	return cap(l.semaphore)
}

// Available returns the number of free slots.
func (l *LoadLimiter) Available() int {
	return cap(l.semaphore) - len(l.semaphore)
}

// WaitForDrain blocks until all active loads complete or ctx is cancelled.
func (l *LoadLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.ActiveCount() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// LimiterStatus is a snapshot of the limiter's state.
type LimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state for monitoring.
func (l *LoadLimiter) Status() LimiterStatus {
	l.mu.RLock()
	active := l.active
	l.mu.RUnlock()

	return LimiterStatus{
		Active:        active,
		Available:     cap(l.semaphore) - len(l.semaphore),
		MaxConcurrent: cap(l.semaphore),
	}
}
