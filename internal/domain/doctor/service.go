package doctor

import "context"

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

// GetByID returns the doctor or nil when absent.
func (s *Service) GetByID(ctx context.Context, id int) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

// Login verifies that the given name matches the stored doctor name for the
// id. A mismatch or unknown id yields (nil, nil); the caller decides how to
// phrase the rejection.
func (s *Service) Login(ctx context.Context, id int, name string) (*Doctor, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || name == "" || d.Name != name {
		return nil, nil
	}
	return d, nil
}
