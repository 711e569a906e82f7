// Package retry re-runs store operations that failed for transient reasons.
package retry

import (
	"context"
	"errors"
	"roomops/config"
	"roomops/shared/failure"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

const (
	storeMaxTries   = 2
	backoffMultiply = 2
)

type Retrier interface {
	// Do runs op and retries it once when it fails with a non-domain error.
	// Domain failures (conflicts, validation, not found) are returned untouched on the first attempt;
	// a transient error that survives the retry is reported as failure.StoreUnavailable.
	Do(ctx context.Context, name string, op func(ctx context.Context) error) error
}

type retrierImpl struct {
	wait time.Duration
}

func New(cfg *config.Config) Retrier {
	return &retrierImpl{
		wait: time.Duration(cfg.Checkout.StoreRetryWaitMs) * time.Millisecond,
	}
}

func (r *retrierImpl) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.wait
	policy.Multiplier = backoffMultiply

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := op(ctx)

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return struct{}{}, backoff.Permanent(err)
		}

		return struct{}{}, err
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(storeMaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Str("operation", name).Dur("retryIn", next).Msg("store operation failed, retrying")
		}),
	)
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	log.Error().Err(err).Str("operation", name).Msg("store operation failed after retry")

	return failure.StoreUnavailable(err) //nolint:wrapcheck
}
