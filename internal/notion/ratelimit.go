package notion

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"quoteshare/internal/pkg/errs"
)

// Notion allows 3 requests per second per integration.
const (
	RequestsPerSecond  = 3
	MinRequestInterval = time.Second / RequestsPerSecond
	MaxRetries         = 5
	BaseRetryDelay     = time.Second
	MaxRetryDelay      = 32 * time.Second
)

// ErrRetriesExhausted marks an operation that stayed rate-limited or failing
// through every retry.
var ErrRetriesExhausted = errs.New("notion api retries exhausted")

// CalculateBackoff returns the wait before retry number attempt (0-based):
// base·2^attempt plus 0-30% jitter, capped at maxDelay.
func CalculateBackoff(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	exponential := float64(baseDelay) * math.Pow(2, float64(attempt))
	jitter := rand.Float64() * 0.3 * exponential
	return time.Duration(math.Min(exponential+jitter, float64(maxDelay)))
}

// LimiterConfig tunes pacing and retry behavior. Zero values fall back to the
// Notion defaults above.
type LimiterConfig struct {
	MinInterval time.Duration
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func (c LimiterConfig) withDefaults() LimiterConfig {
	if c.MinInterval <= 0 {
		c.MinInterval = MinRequestInterval
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = MaxRetries
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = BaseRetryDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = MaxRetryDelay
	}
	return c
}

// Limiter serializes all outbound Notion calls in the process through one
// pacing clock: callers queue on the mutex and each dispatch waits out the
// remaining inter-request interval. The drain also covers an operation's
// retries, so a backoff pause blocks the queue exactly like the original
// single-drain design; aggregate throughput is capped process-wide, not
// per owner.
type Limiter struct {
	cfg    LimiterConfig
	logger *slog.Logger

	mu           sync.Mutex
	lastDispatch time.Time
}

func NewLimiter(cfg LimiterConfig, logger *slog.Logger) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Limiter{cfg: cfg.withDefaults(), logger: logger}
}

// Execute runs op under the process-wide throttle, retrying transient errors
// with exponential backoff (or the server-requested Retry-After). Fatal
// errors propagate immediately; exhausting retries wraps the last error in
// ErrRetriesExhausted.
func (l *Limiter) Execute(ctx context.Context, op func(ctx context.Context) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.pace(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == l.cfg.MaxRetries {
			break
		}

		delay := CalculateBackoff(attempt, l.cfg.BaseDelay, l.cfg.MaxDelay)
		if seconds, ok := RetryAfterSeconds(lastErr); ok {
			delay = time.Duration(seconds * float64(time.Second))
		}

		l.logger.Warn("notion api call failed, retrying",
			"attempt", attempt+1,
			"max_retries", l.cfg.MaxRetries,
			"delay", delay,
			"error", lastErr.Error(),
		)

		if err := sleepCtx(ctx, delay); err != nil {
			return err
		}
		if err := l.pace(ctx); err != nil {
			return err
		}
	}

	return errs.Mark(errs.Wrap(lastErr, "retries exhausted"), ErrRetriesExhausted)
}

// pace waits out the remaining inter-request interval and stamps the
// dispatch. Must be called with mu held.
func (l *Limiter) pace(ctx context.Context) error {
	elapsed := time.Since(l.lastDispatch)
	if wait := l.cfg.MinInterval - elapsed; wait > 0 {
		if err := sleepCtx(ctx, wait); err != nil {
			return err
		}
	}
	l.lastDispatch = time.Now()
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
