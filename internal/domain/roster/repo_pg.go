package roster

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediguide/mediguide/internal/domain/patient"
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

func (r *repoPG) ListPatients(ctx context.Context, doctorID int) ([]*patient.Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT p.num, p.name, p.descriptions
		   FROM patient p
		   JOIN doctor_patient dp ON dp.pid = p.num
		  WHERE dp.doc_id = $1`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*patient.Patient
	for rows.Next() {
		var p patient.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Complaint); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, a *Assignment) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO doctor_patient (doc_id, pid) VALUES ($1, $2)`,
		a.DoctorID, a.PatientID)
	return err
}

func (r *repoPG) Remove(ctx context.Context, doctorID, patientID int) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM doctor_patient WHERE doc_id = $1 AND pid = $2`,
		doctorID, patientID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
