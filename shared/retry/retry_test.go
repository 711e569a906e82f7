package retry_test

import (
	"context"
	"errors"
	"roomops/config"
	"roomops/shared/failure"
	"roomops/shared/retry"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRetrier() retry.Retrier {
	cfg := &config.Config{}
	cfg.Checkout.StoreRetryWaitMs = 1

	return retry.New(cfg)
}

func TestRetrier_Do(t *testing.T) {
	errConn := errors.New("driver: bad connection")

	tests := []struct {
		name          string
		results       []error
		expectedCalls int
		expectedKind  string
		expectedErr   error
	}{
		{
			name:          "success on first attempt",
			results:       []error{nil},
			expectedCalls: 1,
		},
		{
			name:          "transient error then success",
			results:       []error{errConn, nil},
			expectedCalls: 2,
		},
		{
			name:          "transient error survives retry",
			results:       []error{errConn, errConn},
			expectedCalls: 2,
			expectedKind:  failure.KindStore,
		},
		{
			name:          "conflict is never retried",
			results:       []error{failure.Conflict("checkout already in progress"), nil},
			expectedCalls: 1,
			expectedKind:  failure.KindConflict,
			expectedErr:   failure.Conflict("checkout already in progress"),
		},
		{
			name:          "not found is never retried",
			results:       []error{failure.NotFound("booking not found")},
			expectedCalls: 1,
			expectedKind:  failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0

			err := newRetrier().Do(context.Background(), "test", func(_ context.Context) error {
				res := tt.results[calls]
				calls++

				return res
			})

			assert.Equal(t, tt.expectedCalls, calls)

			if tt.expectedKind == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.True(t, failure.Is(err, tt.expectedKind), "unexpected kind %s", failure.GetKind(err))

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			}
		})
	}
}
