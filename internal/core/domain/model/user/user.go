// Package user provides the account entity keyed by email address.
package user

import (
	"errors"
	"fmt"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using an improperly initialized User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// Role is an account's capability level.
type Role string

const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleRider && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is an account registered with the system. Email is the unique key;
// the role is derived from what the account does (riders get the rider role
// on approval, administrators are promoted explicitly).
type User struct {
	id        kernel.UUID
	email     kernel.Email
	role      Role
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewUser registers an account with the default user role.
func NewUser(id kernel.UUID, email kernel.Email, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := email.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:        id,
		email:     email,
		role:      RoleUser,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email kernel.Email, role Role, createdAt time.Time) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		email.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return &User{
		id:        id,
		email:     email,
		role:      role,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the unique account address.
func (u *User) Email() kernel.Email {
	return u.email
}

// Role returns the account's capability level.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ChangeRole sets the account's role after validating it.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
