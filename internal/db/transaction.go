package db

import "context"

// TransactionManager runs a function inside a store transaction. Bill writes
// and their outbox events go through it so both commit or neither does.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(sessCtx context.Context) (interface{}, error)) (interface{}, error)
}
