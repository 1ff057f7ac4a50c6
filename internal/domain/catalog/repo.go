package catalog

import "context"

type Repository interface {
	// List returns the whole catalog in stable id order.
	List(ctx context.Context) ([]*Drug, error)
	Create(ctx context.Context, d *Drug) error
}
