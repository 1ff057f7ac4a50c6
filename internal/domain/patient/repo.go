package patient

import "context"

// Repository is the patient store. GetByID returns (nil, nil) when no record
// exists; absence is a normal outcome, not an error.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
}
