// Package rider provides the aggregate root for couriers who execute
// pickups and deliveries.
//
// The package includes:
//   - Rider: The aggregate root managing approval state and availability
//   - Status: The application/approval state (pending, active, deactive)
//   - WorkStatus: The availability state coupled to parcel assignment events
//
// Key business rules:
//   - A rider application starts pending and free
//   - Only an active, free rider can start a delivery
//   - A rider with work in progress is the assigned rider of exactly one
//     non-terminal parcel
package rider
