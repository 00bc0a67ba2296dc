// Package retry executes fallible remote operations with bounded
// exponential-backoff retry for transient failures. It is a pure
// control-flow combinator and assumes nothing about what the operation does.
package retry

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

// Default retry budget and backoff base.
const (
	DefaultMaxRetries = 5
	DefaultBaseDelay  = 2 * time.Second
	DefaultMaxJitter  = time.Second
)

// Kind classifies a failure for retry decisions and user-facing wording.
type Kind int

// Failure kinds. Only the transient kinds are retried; everything else
// propagates immediately.
const (
	KindPermanent Kind = iota
	KindRateLimited
	KindOverloaded
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindOverloaded:
		return "service overloaded"
	case KindTimeout:
		return "gateway timeout"
	default:
		return "permanent"
	}
}

// Transient reports whether this kind of failure is worth retrying.
func (k Kind) Transient() bool {
	return k != KindPermanent
}

// Advice returns a user-facing hint for how long to wait before trying
// again, distinguishing "overloaded" from "rate limited" from "timeout".
func (k Kind) Advice() string {
	switch k {
	case KindRateLimited:
		return "the service is rate limiting requests; wait a minute and try again"
	case KindOverloaded:
		return "the service is overloaded; try again in a few minutes"
	case KindTimeout:
		return "the request timed out; try again in a few seconds"
	default:
		return "the request was rejected; simplify your input or enter the details manually"
	}
}

// Classify inspects an error's status code and message to decide whether it
// is a transient failure (429 rate limit, 503 overloaded, 504 timeout).
func Classify(err error) Kind {
	if err == nil {
		return KindPermanent
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return KindRateLimited
		case 503:
			return KindOverloaded
		case 504:
			return KindTimeout
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "too many requests"), strings.Contains(msg, "resource exhausted"):
		return KindRateLimited
	case strings.Contains(msg, "503"), strings.Contains(msg, "overloaded"), strings.Contains(msg, "unavailable"):
		return KindOverloaded
	case strings.Contains(msg, "504"), strings.Contains(msg, "deadline exceeded"), strings.Contains(msg, "gateway timeout"):
		return KindTimeout
	}
	return KindPermanent
}

// Options configures the retry behavior.
type Options struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxJitter  time.Duration
	// Sleep is injectable for tests; nil means a context-aware time.Sleep.
	Sleep func(ctx context.Context, d time.Duration) error
	// OnRetry, if set, is called before each backoff wait.
	OnRetry func(attempt int, kind Kind, wait time.Duration)
}

// DefaultOptions returns the standard retry budget.
func DefaultOptions() *Options {
	return &Options{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxJitter:  DefaultMaxJitter,
	}
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

// Do runs op, retrying transient failures with exponential backoff plus
// jitter. Permanent failures propagate on the first attempt. After the
// retry budget is exhausted the last error propagates, rewritten to a
// cleaner message when it carries a structured JSON payload.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts *Options) (T, error) {
	var zero T
	if opts == nil {
		opts = DefaultOptions()
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	maxJitter := opts.MaxJitter
	if maxJitter <= 0 {
		maxJitter = DefaultMaxJitter
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		kind := Classify(err)
		if !kind.Transient() || attempt >= opts.MaxRetries {
			return zero, CleanError(lastErr)
		}

		// baseDelay * 2^attempt, with jitter to avoid thundering-herd
		// resynchronization across concurrent callers.
		wait := opts.BaseDelay<<attempt + time.Duration(rand.Int63n(int64(maxJitter)))
		if opts.OnRetry != nil {
			opts.OnRetry(attempt+1, kind, wait)
		}
		if err := sleep(ctx, wait); err != nil {
			return zero, err
		}
	}
}

// CleanError extracts a cleaner message when the error text is a
// stringified JSON payload of the form {"error": {"message": ...}}.
// The original error stays reachable through Unwrap.
func CleanError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.TrimSpace(err.Error())
	if !strings.HasPrefix(msg, "{") {
		return err
	}
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if jsonErr := json.Unmarshal([]byte(msg), &payload); jsonErr != nil || payload.Error.Message == "" {
		return err
	}
	return &cleanedError{message: payload.Error.Message, cause: err}
}

type cleanedError struct {
	message string
	cause   error
}

func (e *cleanedError) Error() string { return e.message }

func (e *cleanedError) Unwrap() error { return e.cause }
