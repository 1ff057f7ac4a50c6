package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

type stubTx struct{ pgx.Tx }

func TestTxRoundTrip(t *testing.T) {
	tx := stubTx{}
	ctx := WithTx(context.Background(), tx)
	if got := TxFromContext(ctx); got != tx {
		t.Errorf("TxFromContext = %v, want the stored tx", got)
	}
}

func TestTxFromContextAbsent(t *testing.T) {
	if got := TxFromContext(context.Background()); got != nil {
		t.Errorf("expected nil without a stored tx, got %v", got)
	}
}
