package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"zapshift/internal/pkg/errs"
)

// ErrEmailIsNotConstructed indicates that an Email was not created through NewEmail.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

// Email is a value object for an address that identifies customers, riders,
// and users across the system. Addresses are stored lowercased so lookups by
// email are case-insensitive.
//
// The zero value is invalid; construct through NewEmail.
type Email struct {
	address string
}

// NewEmail validates and normalizes an address. The address must parse as an
// RFC 5322 addr-spec; it is lowercased before being stored.
func NewEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", address))
	}

	return Email{address: strings.ToLower(parsed.Address)}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.address
}

// IsEqual reports whether two emails refer to the same address.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// Validate returns ErrEmailIsNotConstructed for a zero-value Email.
func (e Email) Validate() error {
	if e.address == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}
