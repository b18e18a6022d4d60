package rider

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// Status represents a rider's application/approval state. Riders apply and
// start as Pending; an administrator approves them to Active or turns an
// account off with Deactive.
type Status string

const (
	// StatusPending is the initial state of a new rider application.
	StatusPending Status = "pending"

	// StatusActive indicates an approved rider who may take deliveries.
	StatusActive Status = "active"

	// StatusDeactive indicates a rider account turned off by an administrator.
	StatusDeactive Status = "deactive"
)

// Validate checks that the status is one of the defined approval states.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusActive && s != StatusDeactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"rider status",
			fmt.Errorf("%q is not a valid rider status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// WorkStatus represents a rider's current availability.
//
// The status oscillates with assignment events: assignment moves a free
// rider to InDelivery, pickup moves them to Busy, and delivery frees them
// again.
type WorkStatus string

const (
	// WorkStatusFree indicates the rider has no parcel in progress.
	WorkStatusFree WorkStatus = "free"

	// WorkStatusInDelivery indicates the rider is heading to a pickup.
	WorkStatusInDelivery WorkStatus = "in_delivery"

	// WorkStatusBusy indicates the rider is carrying a picked-up parcel.
	WorkStatusBusy WorkStatus = "busy"
)

// Validate checks that the status is one of the defined availability states.
func (s WorkStatus) Validate() error {
	if s != WorkStatusFree && s != WorkStatusInDelivery && s != WorkStatusBusy {
		return errs.NewValueIsInvalidErrorWithCause(
			"work status",
			fmt.Errorf("%q is not a valid work status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s WorkStatus) String() string {
	return string(s)
}
