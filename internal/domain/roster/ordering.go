package roster

import "github.com/mediguide/mediguide/internal/domain/patient"

// Ordering decides which assigned patient is seen next. It is a pure
// function of the current assignment set, so the choice is stable across
// stateless calls.
type Ordering interface {
	Next(patients []*patient.Patient) *patient.Patient
}

// ByLowestID picks the patient with the smallest id. Since ids are assigned
// at registration this approximates first-come-first-served.
type ByLowestID struct{}

func (ByLowestID) Next(patients []*patient.Patient) *patient.Patient {
	var next *patient.Patient
	for _, p := range patients {
		if next == nil || p.ID < next.ID {
			next = p
		}
	}
	return next
}
