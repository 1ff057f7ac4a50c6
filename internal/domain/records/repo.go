package records

import "context"

type Repository interface {
	CreateDiagnosis(ctx context.Context, rec *DiagnosisRecord) error
	CreateMedication(ctx context.Context, rec *MedicationRecord) error
	ListDiagnosesByPatient(ctx context.Context, patientID int) ([]*DiagnosisRecord, error)
	ListMedicationsByPatient(ctx context.Context, patientID int) ([]*MedicationRecord, error)
}
