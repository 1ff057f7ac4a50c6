package records

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

func (r *repoPG) CreateDiagnosis(ctx context.Context, rec *DiagnosisRecord) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO result_of_diagnosis (num, id, doc_name, result)
		 VALUES ($1, $2, $3, $4)`,
		rec.PatientID, rec.DoctorID, rec.DoctorName, rec.Conclusion)
	return err
}

func (r *repoPG) CreateMedication(ctx context.Context, rec *MedicationRecord) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO medicine_result (num, id, doc_name, medicine, medicine_helper)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.PatientID, rec.DoctorID, rec.DoctorName, rec.Drugs, rec.Instructions)
	return err
}

func (r *repoPG) ListDiagnosesByPatient(ctx context.Context, patientID int) ([]*DiagnosisRecord, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT num, id, doc_name, result
		   FROM result_of_diagnosis
		  WHERE num = $1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*DiagnosisRecord
	for rows.Next() {
		var rec DiagnosisRecord
		if err := rows.Scan(&rec.PatientID, &rec.DoctorID, &rec.DoctorName, &rec.Conclusion); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

func (r *repoPG) ListMedicationsByPatient(ctx context.Context, patientID int) ([]*MedicationRecord, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT num, id, doc_name, medicine, medicine_helper
		   FROM medicine_result
		  WHERE num = $1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*MedicationRecord
	for rows.Next() {
		var rec MedicationRecord
		if err := rows.Scan(&rec.PatientID, &rec.DoctorID, &rec.DoctorName, &rec.Drugs, &rec.Instructions); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}
