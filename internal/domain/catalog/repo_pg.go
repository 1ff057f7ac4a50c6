package catalog

import (
	"context"

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

func (r *repoPG) List(ctx context.Context) ([]*Drug, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, category, introduction, usage_method,
		        applicable_symptoms, advantages, side_effects
		   FROM drugs
		  ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drugs []*Drug
	for rows.Next() {
		var d Drug
		if err := rows.Scan(&d.ID, &d.Name, &d.Category, &d.Description,
			&d.UsageMethod, &d.Indications, &d.Advantages, &d.SideEffects); err != nil {
			return nil, err
		}
		drugs = append(drugs, &d)
	}
	return drugs, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, d *Drug) error {
	return r.conn(ctx).QueryRow(ctx,
		`INSERT INTO drugs (name, category, introduction, usage_method,
		                    applicable_symptoms, advantages, side_effects)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		d.Name, d.Category, d.Description, d.UsageMethod,
		d.Indications, d.Advantages, d.SideEffects).
		Scan(&d.ID)
}
