package roster

import (
	"context"

	"github.com/mediguide/mediguide/internal/domain/patient"
)

type Repository interface {
	// ListPatients returns every patient currently assigned to the doctor,
	// in no guaranteed order. Ordering is the service's concern.
	ListPatients(ctx context.Context, doctorID int) ([]*patient.Patient, error)
	Create(ctx context.Context, a *Assignment) error
	// Remove deletes the assignment and reports how many rows matched.
	// Zero is not an error.
	Remove(ctx context.Context, doctorID, patientID int) (int64, error)
}
