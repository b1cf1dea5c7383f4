package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleWorker Role = "WORKER"
)

// Action names the operations gated by authorization checks.
type Action string

const (
	ActionCreateBooking     Action = "createBooking"
	ActionConfirmBooking    Action = "confirmBooking"
	ActionStartBooking      Action = "startBooking"
	ActionCompleteBooking   Action = "completeBooking"
	ActionCancelBooking     Action = "cancelBooking"
	ActionRecordPayment     Action = "recordPayment"
	ActionReconcilePayments Action = "reconcilePayments"
)

// Permission names the boolean flags carried on a profile.
type Permission string

const (
	PermissionManageBookings       Permission = "manageBookings"
	PermissionManagePayments       Permission = "managePayments"
	PermissionManageReconciliation Permission = "manageReconciliation"
)

// Profile is an acting principal resolved from the external profile store.
// ADMIN role is allowed every action; any other role is checked against its
// permission flags.
type Profile struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Role        Role                `json:"role"`
	Permissions map[Permission]bool `json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Can reports whether the profile carries the given permission flag.
func (p *Profile) Can(perm Permission) bool {
	return p.Permissions[perm]
}
