package parcel_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, address string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(address)
	require.NoError(t, err)
	return email
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), mustEmail(t, "customer@example.com"), time.Now())
	require.NoError(t, err)
	return p
}

func newTestRider(t *testing.T) parcel.AssignedRider {
	t.Helper()
	rider, err := parcel.NewAssignedRider(kernel.NewUUID(), "Rahim", mustEmail(t, "rahim@example.com"))
	require.NoError(t, err)
	return rider
}

func TestNewParcel(t *testing.T) {
	t.Run("starts pending, unpaid, not cashed out", func(t *testing.T) {
		p := newTestParcel(t)

		assert.Equal(t, parcel.DeliveryStatusPending, p.DeliveryStatus())
		assert.Equal(t, parcel.PaymentStatusUnpaid, p.PaymentStatus())
		assert.Equal(t, parcel.CashoutStatusNone, p.CashoutStatus())
		assert.Nil(t, p.AssignedRider())
		assert.Nil(t, p.CashedOutAt())
		require.NoError(t, p.Validate())
	})

	t.Run("requires a constructed id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.UUID{}, mustEmail(t, "customer@example.com"), time.Now())
		require.Error(t, err)
	})

	t.Run("requires a creator email", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.Email{}, time.Now())
		require.Error(t, err)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var p parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_Assign(t *testing.T) {
	t.Run("pending parcel takes the rider snapshot", func(t *testing.T) {
		p := newTestParcel(t)
		rider := newTestRider(t)

		require.NoError(t, p.Assign(rider))

		assert.Equal(t, parcel.DeliveryStatusInTransit, p.DeliveryStatus())
		require.NotNil(t, p.AssignedRider())
		assert.True(t, p.AssignedRider().ID().IsEqual(rider.ID()))
		assert.Equal(t, "Rahim", p.AssignedRider().Name())
	})

	t.Run("non-pending parcel rejects assignment", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.Assign(newTestRider(t)))

		err := p.Assign(newTestRider(t))
		require.Error(t, err)
		assert.Equal(t, parcel.DeliveryStatusInTransit, p.DeliveryStatus())
	})

	t.Run("partial rider snapshot cannot be constructed", func(t *testing.T) {
		_, err := parcel.NewAssignedRider(kernel.NewUUID(), "", mustEmail(t, "rahim@example.com"))
		require.Error(t, err)

		_, err = parcel.NewAssignedRider(kernel.NewUUID(), "Rahim", kernel.Email{})
		require.Error(t, err)
	})
}

func TestParcel_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.Assign(newTestRider(t)))
		require.NoError(t, p.Pickup())
		assert.Equal(t, parcel.DeliveryStatusPickedUp, p.DeliveryStatus())

		require.NoError(t, p.Deliver())
		assert.Equal(t, parcel.DeliveryStatusDelivered, p.DeliveryStatus())
		assert.True(t, p.IsCompleted())
	})

	t.Run("pickup before assignment fails", func(t *testing.T) {
		p := newTestParcel(t)
		require.Error(t, p.Pickup())
	})

	t.Run("deliver before pickup fails", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.Assign(newTestRider(t)))
		require.Error(t, p.Deliver())
	})
}

func TestParcel_MarkPaid(t *testing.T) {
	t.Run("unpaid parcel becomes paid", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.MarkPaid())
		assert.Equal(t, parcel.PaymentStatusPaid, p.PaymentStatus())
	})

	t.Run("second payment is rejected", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())

		require.Error(t, p.MarkPaid())
		assert.Equal(t, parcel.PaymentStatusPaid, p.PaymentStatus())
	})
}

func TestParcel_Cashout(t *testing.T) {
	t.Run("sets status and timestamp once", func(t *testing.T) {
		p := newTestParcel(t)
		first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		p.Cashout(first)

		assert.Equal(t, parcel.CashoutStatusCashedOut, p.CashoutStatus())
		require.NotNil(t, p.CashedOutAt())
		assert.Equal(t, first, *p.CashedOutAt())
	})

	t.Run("is idempotent and keeps the original timestamp", func(t *testing.T) {
		p := newTestParcel(t)
		first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		second := first.Add(24 * time.Hour)

		p.Cashout(first)
		p.Cashout(second)

		assert.Equal(t, parcel.CashoutStatusCashedOut, p.CashoutStatus())
		assert.Equal(t, first, *p.CashedOutAt())
	})

	t.Run("is independent of delivery status", func(t *testing.T) {
		p := newTestParcel(t)

		p.Cashout(time.Now())

		assert.Equal(t, parcel.DeliveryStatusPending, p.DeliveryStatus())
		assert.Equal(t, parcel.CashoutStatusCashedOut, p.CashoutStatus())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("round trips full state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdBy := mustEmail(t, "customer@example.com")
		rider := newTestRider(t)
		cashedOutAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
		createdAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

		p, err := parcel.RestoreParcel(
			id, createdBy,
			parcel.DeliveryStatusDelivered,
			parcel.PaymentStatusPaid,
			parcel.CashoutStatusCashedOut,
			&cashedOutAt, &rider, createdAt,
		)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, parcel.DeliveryStatusDelivered, p.DeliveryStatus())
		assert.Equal(t, parcel.PaymentStatusPaid, p.PaymentStatus())
		assert.Equal(t, parcel.CashoutStatusCashedOut, p.CashoutStatus())
		assert.Equal(t, createdAt, p.CreatedAt())
		require.NotNil(t, p.AssignedRider())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), mustEmail(t, "customer@example.com"),
			"lost", parcel.PaymentStatusUnpaid, parcel.CashoutStatusNone,
			nil, nil, time.Now(),
		)
		require.Error(t, err)
	})
}
