package ports

import "context"

// TxManager runs a unit of work against the shared store. Repositories called
// with the ctx passed to fn participate in the same transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	// RunReadOnly runs fn in a read-only snapshot.
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
