package commands_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, address string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(address)
	require.NoError(t, err)
	return email
}

func newPendingParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), mustEmail(t, "customer@example.com"), time.Now().UTC())
	require.NoError(t, err)
	return p
}

func newActiveFreeRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(
		kernel.NewUUID(),
		"Jamal Uddin",
		mustEmail(t, "rider@example.com"),
		"Dhaka",
		rider.StatusActive,
		rider.WorkStatusFree,
	)
	require.NoError(t, err)
	return r
}

func newRegisteredUser(t *testing.T, address string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), mustEmail(t, address), time.Now().UTC())
	require.NoError(t, err)
	return u
}
