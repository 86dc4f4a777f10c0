package httpclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-frontend/internal/platform/config"
)

func TestNewBackOff_GrowsWithinJitter(t *testing.T) {
	t.Parallel()

	cfg := config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
	}

	b := newBackOff(cfg)
	base := float64(cfg.InitialInterval)
	for attempt := 1; attempt <= 3; attempt++ {
		delay := b.NextBackOff()
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))
		if delay < lo || delay > hi {
			t.Errorf("attempt %d: delay %v not in [%v, %v]", attempt, delay, lo, hi)
		}
		base *= cfg.Multiplier
	}
}

func TestNewBackOff_CappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	cfg := config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		Multiplier:      2.0,
	}

	b := newBackOff(cfg)
	limit := time.Duration(float64(cfg.MaxInterval) * (1 + jitterFraction))
	for range 20 {
		if delay := b.NextBackOff(); delay > limit {
			t.Errorf("delay %v exceeds max interval with jitter %v", delay, limit)
		}
	}
}

func TestIsIdempotent(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		http.MethodGet:    true,
		http.MethodHead:   true,
		http.MethodPost:   false,
		http.MethodPut:    false,
		http.MethodPatch:  false,
		http.MethodDelete: false,
	}

	for method, want := range tests {
		if got := isIdempotent(method); got != want {
			t.Errorf("isIdempotent(%s) = %v, want %v", method, got, want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{200: false, 201: false, 400: false, 404: false, 429: true, 500: true, 503: true} {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}
