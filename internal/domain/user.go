package domain

import "time"

// UserRole gates admin-only operations.
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == UserRoleCustomer || r == UserRoleAdmin
}

// UserStatus tracks a pending role-upgrade request.
type UserStatus string

const (
	UserStatusNone      UserStatus = ""
	UserStatusRequested UserStatus = "Requested"
	UserStatusVerified  UserStatus = "Verified"
)

// User is the domain model for marketplace accounts; email is the identity key.
type User struct {
	ID           string
	Name         string
	Email        string
	Image        string
	PasswordHash *string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
}
