package patient

// Patient maps to the patient table. Complaint is the free-text condition
// description captured at registration; it is never parsed, only displayed and
// substring-matched.
type Patient struct {
	ID        int    `db:"num" json:"id"`
	Name      string `db:"name" json:"name"`
	Complaint string `db:"descriptions" json:"complaint"`
}
