package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type contextKey string

const txKey contextKey = "db_tx"

// WithTx returns a context carrying the given transaction. Repositories route
// their statements through it when present.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from context, or nil.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey).(pgx.Tx)
	return tx
}
