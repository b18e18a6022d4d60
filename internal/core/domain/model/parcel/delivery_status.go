package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// DeliveryStatus represents the parcel's position in the delivery lifecycle.
// It implements a forward-only state machine; a parcel never moves back to an
// earlier status.
//
// State transitions:
//
//	Pending ──assign──> InTransit ──pickup──> PickedUp ──deliver──> Delivered
//
// ServiceCenterDelivered is an alternate terminal status set by a back-office
// action outside this state machine; for reporting purposes it counts as a
// completed delivery, same as Delivered.
type DeliveryStatus string

const (
	// DeliveryStatusPending is the initial status of a newly created parcel,
	// waiting for a rider assignment.
	DeliveryStatusPending DeliveryStatus = "pending"

	// DeliveryStatusInTransit indicates a rider has been assigned and the
	// parcel is on its way to pickup.
	DeliveryStatusInTransit DeliveryStatus = "in_transit"

	// DeliveryStatusPickedUp indicates the assigned rider has collected the
	// parcel from the sender.
	DeliveryStatusPickedUp DeliveryStatus = "picked_up"

	// DeliveryStatusDelivered indicates the parcel reached its receiver.
	// This is a terminal status.
	DeliveryStatusDelivered DeliveryStatus = "delivered"

	// DeliveryStatusServiceCenterDelivered indicates the parcel was handed
	// over at a service center instead of the receiver's address.
	// This is a terminal status equivalent to Delivered for reporting.
	DeliveryStatusServiceCenterDelivered DeliveryStatus = "service_center_delivered"
)

// getValidDeliveryStatuses returns the set of statuses accepted from external
// sources such as the database or query parameters.
func getValidDeliveryStatuses() map[DeliveryStatus]struct{} {
	return map[DeliveryStatus]struct{}{
		DeliveryStatusPending:                {},
		DeliveryStatusInTransit:              {},
		DeliveryStatusPickedUp:               {},
		DeliveryStatusDelivered:              {},
		DeliveryStatusServiceCenterDelivered: {},
	}
}

// Validate checks that the status is one of the defined lifecycle statuses.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%q is not a valid delivery status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsCompleted reports whether the status is a terminal completion state.
// Delivered and ServiceCenterDelivered are treated alike for reporting.
func (s DeliveryStatus) IsCompleted() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusServiceCenterDelivered
}

// Assign transitions the status to InTransit.
//
// Valid transitions:
//   - Pending -> InTransit
//
// Any other starting status is rejected: assignment is only legal for a
// parcel that is still waiting for a rider.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if s != DeliveryStatusPending {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to assign a rider", s),
		)
	}
	return DeliveryStatusInTransit, nil
}

// Pickup transitions the status to PickedUp.
//
// Valid transitions:
//   - InTransit -> PickedUp
func (s DeliveryStatus) Pickup() (DeliveryStatus, error) {
	if s != DeliveryStatusInTransit {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to pick up", s),
		)
	}
	return DeliveryStatusPickedUp, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - PickedUp -> Delivered
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != DeliveryStatusPickedUp {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return DeliveryStatusDelivered, nil
}
