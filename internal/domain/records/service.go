package records

import (
	"context"
	"errors"
)

var (
	ErrMissingPatient    = errors.New("patient id is required")
	ErrMissingDoctor     = errors.New("doctor id and name are required")
	ErrMissingConclusion = errors.New("diagnosis conclusion is required")
	ErrMissingDrugs      = errors.New("medication drugs are required")
)

type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

// SaveDiagnosis appends a diagnosis row. It never overwrites an earlier
// conclusion for the same patient.
func (s *Service) SaveDiagnosis(ctx context.Context, rec *DiagnosisRecord) error {
	if rec.PatientID == 0 {
		return ErrMissingPatient
	}
	if rec.DoctorID == 0 || rec.DoctorName == "" {
		return ErrMissingDoctor
	}
	if rec.Conclusion == "" {
		return ErrMissingConclusion
	}
	return s.records.CreateDiagnosis(ctx, rec)
}

// SaveMedication appends a medication row. Instructions may be empty.
func (s *Service) SaveMedication(ctx context.Context, rec *MedicationRecord) error {
	if rec.PatientID == 0 {
		return ErrMissingPatient
	}
	if rec.DoctorID == 0 || rec.DoctorName == "" {
		return ErrMissingDoctor
	}
	if rec.Drugs == "" {
		return ErrMissingDrugs
	}
	return s.records.CreateMedication(ctx, rec)
}

func (s *Service) ListDiagnosesByPatient(ctx context.Context, patientID int) ([]*DiagnosisRecord, error) {
	return s.records.ListDiagnosesByPatient(ctx, patientID)
}

func (s *Service) ListMedicationsByPatient(ctx context.Context, patientID int) ([]*MedicationRecord, error) {
	return s.records.ListMedicationsByPatient(ctx, patientID)
}
