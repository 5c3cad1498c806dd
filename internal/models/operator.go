package models

// Operator mirrors a row of the operators table.
type Operator struct {
	OperatorID  string   `db:"operator_id"`
	Name        string   `db:"name"`
	PINHash     string   `db:"pin_hash"`
	Permissions []string `db:"permissions"`
	IsActive    bool     `db:"is_active"`
	AuditFields
}
