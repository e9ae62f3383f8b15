package domain

import "context"

// TxManager runs fn inside a single storage transaction. Repositories called
// with the context passed to fn join that transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
