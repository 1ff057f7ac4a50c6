package roster

import (
	"context"
	"testing"

	"github.com/mediguide/mediguide/internal/domain/patient"
)

type mockRepo struct {
	patients    map[int]*patient.Patient
	assignments []Assignment
}

func (m *mockRepo) ListPatients(_ context.Context, doctorID int) ([]*patient.Patient, error) {
	// mirror the real repo's join: an assignment without a patient row
	// yields nothing, never a nil entry
	var out []*patient.Patient
	for _, a := range m.assignments {
		if a.DoctorID != doctorID {
			continue
		}
		if p, ok := m.patients[a.PatientID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) Create(_ context.Context, a *Assignment) error {
	m.assignments = append(m.assignments, *a)
	return nil
}

func (m *mockRepo) Remove(_ context.Context, doctorID, patientID int) (int64, error) {
	for i, a := range m.assignments {
		if a.DoctorID == doctorID && a.PatientID == patientID {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func testRoster(ids ...int) *Service {
	repo := &mockRepo{patients: map[int]*patient.Patient{}}
	for _, id := range ids {
		repo.patients[id] = &patient.Patient{ID: id}
		repo.assignments = append(repo.assignments, Assignment{DoctorID: 1, PatientID: id})
	}
	return NewService(repo, nil)
}

func TestNextPatientPicksLowestID(t *testing.T) {
	svc := testRoster(5, 2, 8)
	next, err := svc.NextPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("NextPatient: %v", err)
	}
	if next == nil || next.ID != 2 {
		t.Errorf("next = %+v, want patient 2", next)
	}
}

func TestNextPatientEmptyQueue(t *testing.T) {
	svc := testRoster()
	next, err := svc.NextPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("NextPatient: %v", err)
	}
	if next != nil {
		t.Errorf("expected nil on empty queue, got %+v", next)
	}
}

func TestNextPatientStableAcrossCalls(t *testing.T) {
	svc := testRoster(5, 2, 8)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		next, err := svc.NextPatient(ctx, 1)
		if err != nil {
			t.Fatalf("NextPatient: %v", err)
		}
		if next.ID != 2 {
			t.Fatalf("call %d returned patient %d, want 2", i, next.ID)
		}
	}
}

func TestCloseAndAdvance(t *testing.T) {
	svc := testRoster(5, 2, 8)
	ctx := context.Background()

	next, err := svc.CloseAndAdvance(ctx, 1, 2)
	if err != nil {
		t.Fatalf("CloseAndAdvance: %v", err)
	}
	if next == nil || next.ID != 5 {
		t.Errorf("after closing 2, next = %+v, want patient 5", next)
	}
}

func TestCloseAndAdvanceIdempotent(t *testing.T) {
	svc := testRoster(5, 2, 8)
	ctx := context.Background()

	if _, err := svc.CloseAndAdvance(ctx, 1, 2); err != nil {
		t.Fatalf("first close: %v", err)
	}
	// a retried close of the same patient is not an error and yields the
	// same successor
	next, err := svc.CloseAndAdvance(ctx, 1, 2)
	if err != nil {
		t.Fatalf("second close: %v", err)
	}
	if next == nil || next.ID != 5 {
		t.Errorf("retry returned %+v, want patient 5", next)
	}
}

func TestCloseAndAdvanceLastPatient(t *testing.T) {
	svc := testRoster(4)
	next, err := svc.CloseAndAdvance(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("CloseAndAdvance: %v", err)
	}
	if next != nil {
		t.Errorf("queue should be empty, got %+v", next)
	}
}

func TestListPatientsSortedByID(t *testing.T) {
	svc := testRoster(5, 2, 8)
	patients, err := svc.ListPatients(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	want := []int{2, 5, 8}
	if len(patients) != len(want) {
		t.Fatalf("got %d patients, want %d", len(patients), len(want))
	}
	for i, p := range patients {
		if p.ID != want[i] {
			t.Errorf("patients[%d].ID = %d, want %d", i, p.ID, want[i])
		}
	}
}

func TestAssignExtendsQueue(t *testing.T) {
	repo := &mockRepo{
		patients: map[int]*patient.Patient{
			3: {ID: 3},
			5: {ID: 5},
		},
		assignments: []Assignment{{DoctorID: 1, PatientID: 5}},
	}
	svc := NewService(repo, nil)
	ctx := context.Background()

	if err := svc.Assign(ctx, 1, 3); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	next, err := svc.NextPatient(ctx, 1)
	if err != nil {
		t.Fatalf("NextPatient: %v", err)
	}
	if next == nil || next.ID != 3 {
		t.Errorf("next = %+v, want newly assigned patient 3", next)
	}
}
