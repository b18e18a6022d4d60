// Package parcel provides the aggregate root and state machines for the
// parcel delivery lifecycle.
//
// The package includes:
//   - Parcel: The aggregate root managing identity, lifecycle, payment, and rider assignment
//   - DeliveryStatus: A forward-only state machine over the delivery lifecycle
//   - PaymentStatus and CashoutStatus: Single-transition payment and settlement states
//   - AssignedRider: A value object enforcing the all-or-nothing rider snapshot
//
// Key business rules:
//   - Delivery status follows pending -> in_transit -> picked_up -> delivered
//     with service_center_delivered as an alternate terminal status
//   - Status never reverts to an earlier state
//   - A parcel is paid at most once; paying again is a conflict
//   - Cashout is independent of the delivery lifecycle and idempotent
package parcel
