package records

// DiagnosisRecord captures one diagnosis conclusion for a patient. Records
// are append-only: repeat diagnoses for the same visit each get their own row.
type DiagnosisRecord struct {
	PatientID  int    `db:"num" json:"patientId"`
	DoctorID   int    `db:"id" json:"doctorId"`
	DoctorName string `db:"doc_name" json:"doctorName"`
	Conclusion string `db:"result" json:"conclusion"`
}

// MedicationRecord captures the drugs dispensed for a patient plus usage
// instructions. Append-only, like DiagnosisRecord.
type MedicationRecord struct {
	PatientID    int    `db:"num" json:"patientId"`
	DoctorID     int    `db:"id" json:"doctorId"`
	DoctorName   string `db:"doc_name" json:"doctorName"`
	Drugs        string `db:"medicine" json:"drugs"`
	Instructions string `db:"medicine_helper" json:"instructions"`
}
