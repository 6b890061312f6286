package interfaces

import "context"

// ITransactionManager runs fn inside one database transaction. Repositories
// pick the transaction handle out of the context fn receives, so every write
// issued within fn commits or rolls back as a unit.
type ITransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
