package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrSearchUsersQueryIsNotConstructed = errors.New(
	"SearchUsersQuery must be created via NewSearchUsersQuery constructor",
)

// searchUsersLimit caps the admin search result size.
const searchUsersLimit = 10

// SearchUsersQuery finds accounts whose email contains a fragment,
// case-insensitively. Backs the admin's user picker, so results are capped.
type SearchUsersQuery struct {
	emailFragment string

	guard guard.ConstructorGuard
}

// NewSearchUsersQuery creates an account search query.
func NewSearchUsersQuery(emailFragment string) (SearchUsersQuery, error) {
	if emailFragment == "" {
		return SearchUsersQuery{}, errs.NewValueIsRequiredError("email fragment")
	}

	return SearchUsersQuery{
		emailFragment: emailFragment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// EmailFragment returns the substring to match against emails.
func (q SearchUsersQuery) EmailFragment() string {
	return q.emailFragment
}

// Validate ensures the query was created through the constructor.
func (q SearchUsersQuery) Validate() error {
	return q.guard.Validate(ErrSearchUsersQueryIsNotConstructed)
}

// UserResponse is the account read model for admin views.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	Role      user.Role
	CreatedAt time.Time
}
