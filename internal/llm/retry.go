package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider repeats failed Generate calls according to a RetryConfig.
// With the default config it makes exactly one call.
type RetryProvider struct {
	inner  Provider
	policy RetryConfig
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, policy: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return attempt(ctx, r.policy, func() (*Response, error) { return r.inner.Generate(ctx, req) })
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// RetrySynthesizer is RetryProvider for speech.
type RetrySynthesizer struct {
	inner  Synthesizer
	policy RetryConfig
}

func WithSpeechRetry(s Synthesizer, cfg RetryConfig) Synthesizer {
	return &RetrySynthesizer{inner: s, policy: cfg}
}

func (r *RetrySynthesizer) Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error) {
	return attempt(ctx, r.policy, func() (*Speech, error) { return r.inner.Synthesize(ctx, req) })
}

func (r *RetrySynthesizer) ModelID() string { return r.inner.ModelID() }

// attempt runs call up to cfg.MaxAttempts times. Between tries it waits
// for the provider's Retry-After or the backoff schedule, whichever
// applies, and gives up early when ctx ends.
func attempt[T any](ctx context.Context, cfg RetryConfig, call func() (T, error)) (T, error) {
	var zero T
	invalidSeen := false

	for n := 1; ; n++ {
		out, err := call()
		if err == nil {
			return out, nil
		}
		if n >= cfg.MaxAttempts || !retryable(err, &invalidSeen) {
			return zero, err
		}

		t := time.NewTimer(wait(cfg, n, err))
		select {
		case <-ctx.Done():
			t.Stop()
			return zero, ctx.Err()
		case <-t.C:
		}
	}
}

// retryable reports whether err is worth another try. Truncation and
// missing audio repeat deterministically; an off-schema answer gets a
// single second chance.
func retryable(err error, invalidSeen *bool) bool {
	var (
		truncated *ErrMaxTokensExceeded
		noSpeech  *ErrNoSpeech
		invalid   *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.As(err, &truncated), errors.As(err, &noSpeech):
		return false
	case errors.As(err, &invalid):
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}

// wait is the pause after failed try n (1-based): Retry-After when the
// provider sent one, else InitialWait*Multiplier^(n-1) capped at MaxWait,
// with 20% jitter either way.
func wait(cfg RetryConfig, n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(cfg.InitialWait)
	for range n - 1 {
		d *= cfg.Multiplier
		if d >= float64(cfg.MaxWait) {
			break
		}
	}
	d = min(d, float64(cfg.MaxWait))
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}
