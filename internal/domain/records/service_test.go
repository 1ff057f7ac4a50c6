package records

import (
	"context"
	"errors"
	"testing"
)

type mockRepo struct {
	diagnoses   []*DiagnosisRecord
	medications []*MedicationRecord
}

func (m *mockRepo) CreateDiagnosis(_ context.Context, rec *DiagnosisRecord) error {
	m.diagnoses = append(m.diagnoses, rec)
	return nil
}

func (m *mockRepo) CreateMedication(_ context.Context, rec *MedicationRecord) error {
	m.medications = append(m.medications, rec)
	return nil
}

func (m *mockRepo) ListDiagnosesByPatient(_ context.Context, patientID int) ([]*DiagnosisRecord, error) {
	var out []*DiagnosisRecord
	for _, rec := range m.diagnoses {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockRepo) ListMedicationsByPatient(_ context.Context, patientID int) ([]*MedicationRecord, error) {
	var out []*MedicationRecord
	for _, rec := range m.medications {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestSaveDiagnosisAppends(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first := &DiagnosisRecord{PatientID: 3, DoctorID: 1, DoctorName: "华佗", Conclusion: "风寒感冒"}
	second := &DiagnosisRecord{PatientID: 3, DoctorID: 1, DoctorName: "华佗", Conclusion: "风热感冒"}
	if err := svc.SaveDiagnosis(ctx, first); err != nil {
		t.Fatalf("SaveDiagnosis: %v", err)
	}
	if err := svc.SaveDiagnosis(ctx, second); err != nil {
		t.Fatalf("SaveDiagnosis: %v", err)
	}

	got, err := svc.ListDiagnosesByPatient(ctx, 3)
	if err != nil {
		t.Fatalf("ListDiagnosesByPatient: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows after two saves, got %d", len(got))
	}
	if got[0].Conclusion != "风寒感冒" || got[1].Conclusion != "风热感冒" {
		t.Errorf("both conclusions must survive, got %+v", got)
	}
}

func TestSaveDiagnosisValidation(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	tests := []struct {
		name string
		rec  *DiagnosisRecord
		want error
	}{
		{"missing patient", &DiagnosisRecord{DoctorID: 1, DoctorName: "华佗", Conclusion: "x"}, ErrMissingPatient},
		{"missing doctor", &DiagnosisRecord{PatientID: 3, Conclusion: "x"}, ErrMissingDoctor},
		{"missing conclusion", &DiagnosisRecord{PatientID: 3, DoctorID: 1, DoctorName: "华佗"}, ErrMissingConclusion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.SaveDiagnosis(ctx, tt.rec); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveMedicationAppends(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	rec := &MedicationRecord{PatientID: 3, DoctorID: 1, DoctorName: "华佗", Drugs: "感冒灵颗粒", Instructions: "每日三次"}
	if err := svc.SaveMedication(ctx, rec); err != nil {
		t.Fatalf("SaveMedication: %v", err)
	}
	if err := svc.SaveMedication(ctx, rec); err != nil {
		t.Fatalf("SaveMedication: %v", err)
	}
	got, err := svc.ListMedicationsByPatient(ctx, 3)
	if err != nil {
		t.Fatalf("ListMedicationsByPatient: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 rows after two saves, got %d", len(got))
	}
}

func TestSaveMedicationEmptyInstructionsAllowed(t *testing.T) {
	svc := NewService(&mockRepo{})
	rec := &MedicationRecord{PatientID: 3, DoctorID: 1, DoctorName: "华佗", Drugs: "感冒灵颗粒"}
	if err := svc.SaveMedication(context.Background(), rec); err != nil {
		t.Errorf("empty instructions should be accepted: %v", err)
	}
}

func TestSaveMedicationRequiresDrugs(t *testing.T) {
	svc := NewService(&mockRepo{})
	rec := &MedicationRecord{PatientID: 3, DoctorID: 1, DoctorName: "华佗"}
	if err := svc.SaveMedication(context.Background(), rec); !errors.Is(err, ErrMissingDrugs) {
		t.Errorf("got %v, want ErrMissingDrugs", err)
	}
}
