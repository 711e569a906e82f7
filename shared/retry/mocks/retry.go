package mocks

import (
	"context"
	"roomops/shared/retry"
)

type retrierImpl struct {
}

// Do implements retry.Retrier. It runs op exactly once.
func (r *retrierImpl) Do(ctx context.Context, _ string, op func(ctx context.Context) error) error {
	return op(ctx)
}

func NewRetrier() retry.Retrier {
	return &retrierImpl{}
}
