package roster

import (
	"context"
	"sort"

	"github.com/mediguide/mediguide/internal/domain/patient"
)

type Service struct {
	assignments Repository
	ordering    Ordering
}

func NewService(assignments Repository, ordering Ordering) *Service {
	if ordering == nil {
		ordering = ByLowestID{}
	}
	return &Service{assignments: assignments, ordering: ordering}
}

// ListPatients returns the doctor's queue sorted by id so callers render a
// stable view regardless of storage order.
func (s *Service) ListPatients(ctx context.Context, doctorID int) ([]*patient.Patient, error) {
	patients, err := s.assignments.ListPatients(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

// NextPatient returns the patient the ordering strategy selects, or nil when
// the queue is empty.
func (s *Service) NextPatient(ctx context.Context, doctorID int) (*patient.Patient, error) {
	patients, err := s.assignments.ListPatients(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.ordering.Next(patients), nil
}

// CloseAndAdvance removes the patient from the doctor's queue and returns
// whoever is next. Closing a patient who is not on the queue is a no-op, so
// a retried close converges on the same answer.
func (s *Service) CloseAndAdvance(ctx context.Context, doctorID, patientID int) (*patient.Patient, error) {
	if _, err := s.assignments.Remove(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	return s.NextPatient(ctx, doctorID)
}

func (s *Service) Assign(ctx context.Context, doctorID, patientID int) error {
	return s.assignments.Create(ctx, &Assignment{DoctorID: doctorID, PatientID: patientID})
}
