package patient

import (
	"context"
	"fmt"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) GetByID(ctx context.Context, id int) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Register stores a new patient and returns the assigned serial id.
func (s *Service) Register(ctx context.Context, name, complaint string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	p := &Patient{Name: name, Complaint: complaint}
	if err := s.patients.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}
