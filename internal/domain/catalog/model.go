package catalog

// Drug is one entry in the pharmacy catalog. Category groups drugs by the
// complaint they address (感冒药, 退烧药, ...) and is what triage matches on.
type Drug struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Category    string `db:"category" json:"category"`
	Description string `db:"introduction" json:"description"`
	UsageMethod string `db:"usage_method" json:"usageMethod"`
	Indications string `db:"applicable_symptoms" json:"indications"`
	Advantages  string `db:"advantages" json:"advantages"`
	SideEffects string `db:"side_effects" json:"sideEffects"`
}
