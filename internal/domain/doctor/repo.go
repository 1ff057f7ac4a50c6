package doctor

import "context"

// Repository is the doctor store. GetByID returns (nil, nil) when no record
// exists.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Doctor, error)
}
