package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPaymentCommand_ValidInput(t *testing.T) {
	paymentID := kernel.NewUUID()
	parcelID := kernel.NewUUID()
	email := mustEmail(t, "customer@example.com")

	cmd, err := commands.NewRecordPaymentCommand(paymentID, parcelID, email, 150.50, "card", "txn_12345")

	require.NoError(t, err)
	assert.True(t, cmd.PaymentID().IsEqual(paymentID))
	assert.True(t, cmd.ParcelID().IsEqual(parcelID))
	assert.True(t, cmd.Email().IsEqual(email))
	assert.InDelta(t, 150.50, cmd.Amount(), 0.001)
	assert.Equal(t, "card", cmd.Method())
	assert.Equal(t, "txn_12345", cmd.TransactionID())
}

func TestNewRecordPaymentCommand_InvalidAmount(t *testing.T) {
	testCases := []struct {
		name   string
		amount float64
	}{
		{name: "zero amount", amount: 0},
		{name: "negative amount", amount: -10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewRecordPaymentCommand(
				kernel.NewUUID(),
				kernel.NewUUID(),
				mustEmail(t, "customer@example.com"),
				tc.amount,
				"card",
				"txn_12345",
			)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewRecordPaymentCommand_MissingMethod(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustEmail(t, "customer@example.com"),
		100,
		"",
		"txn_12345",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRecordPaymentCommand_MissingTransactionID(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustEmail(t, "customer@example.com"),
		100,
		"card",
		"",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRecordPaymentCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RecordPaymentCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecordPaymentCommandIsNotConstructed)
}
