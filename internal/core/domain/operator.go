package domain

import "slices"

// Permission names an action gated at the edge of the system.
type Permission string

const (
	PermShiftOpen     Permission = "shift:open"
	PermShiftClose    Permission = "shift:close"
	PermShiftCashDrop Permission = "shift:cash_drop"
	PermShiftView     Permission = "shift:view"
	PermShiftViewAny  Permission = "shift:view_any" // managers: other operators' shifts
)

// AllPermissions is every permission known to the shift engine.
var AllPermissions = []Permission{PermShiftOpen, PermShiftClose, PermShiftCashDrop, PermShiftView, PermShiftViewAny}

// Operator is a person allowed to work a cash drawer.
type Operator struct {
	OperatorID  string       `json:"operatorID"`
	Name        string       `json:"name"`
	PINHash     string       `json:"-"`
	Permissions []Permission `json:"permissions"`
	IsActive    bool         `json:"isActive"`
	AuditFields
}

// HasPermission reports whether the operator was granted p.
func (o *Operator) HasPermission(p Permission) bool {
	return slices.Contains(o.Permissions, p)
}

// IsKnownPermission reports whether p is one of AllPermissions.
func IsKnownPermission(p Permission) bool {
	return slices.Contains(AllPermissions, p)
}
