// Package tx defines the transaction boundary used by catalog services.
// Storage drivers provide the implementation.
package tx

import (
	"context"
)

// Manager runs a unit of work atomically.
//
// Services wrap each single-aggregate write (one store, one product, one
// association) in RunInTransaction. Work spanning several aggregates uses
// several calls and is not jointly rolled back.
type Manager interface {
	// RunInTransaction executes fn within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// Nested calls reuse the transaction already carried by ctx.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ManagerFunc adapts a function to Manager.
type ManagerFunc func(ctx context.Context, fn func(ctx context.Context) error) error

// RunInTransaction implements Manager.
func (f ManagerFunc) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// Direct runs fn without a transaction. Used by drivers whose repository
// calls are individually atomic.
var Direct Manager = ManagerFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})
