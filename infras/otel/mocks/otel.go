package mocks

import (
	"context"
	"roomops/infras/otel"
	"sync"
)

// Recorder is an otel.Otel that keeps every scope it opened.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := &Scope{Name: name}

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened with name, or nil.
func (o *Recorder) Scope(name string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, scope := range o.scopes {
		if scope.Name == name {
			return scope
		}
	}

	return nil
}

func NewOtel() otel.Otel {
	return &Recorder{}
}

func NewRecorder() *Recorder {
	return &Recorder{}
}
