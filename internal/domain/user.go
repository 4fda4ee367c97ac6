package domain

import "time"

// UserRole distinguishes people who file tickets from people who work them.
type UserRole string

const (
	RoleReporter UserRole = "REPORTER"
	RoleAgent    UserRole = "AGENT"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleReporter || r == RoleAgent
}

// UserStatus represents lifecycle states for a user account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a reporter or an agent. Role is fixed at creation; there is no
// role-change operation.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      UserRole
	Status    UserStatus
	CreatedAt time.Time
}
