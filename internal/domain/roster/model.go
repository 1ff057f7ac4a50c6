package roster

// Assignment links a patient to a doctor's queue. A patient stays assigned
// until the consultation is closed.
type Assignment struct {
	DoctorID  int `db:"doc_id" json:"doctorId"`
	PatientID int `db:"pid" json:"patientId"`
}
