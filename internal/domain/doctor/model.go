package doctor

// Doctor maps to the doctor table. Reference data: provisioned externally,
// never mutated here.
type Doctor struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"doc_name" json:"name"`
}
