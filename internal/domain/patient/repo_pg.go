package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediguide/mediguide/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) GetByID(ctx context.Context, id int) (*Patient, error) {
	var p Patient
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT num, name, descriptions FROM patient WHERE num = $1`, id).
		Scan(&p.ID, &p.Name, &p.Complaint)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO patient (name, descriptions) VALUES ($1, $2) RETURNING num`,
		p.Name, p.Complaint).Scan(&p.ID)
}
