package commands

// UpdateCounts reports how many rows each store changed during a
// progress operation. Callers use it to detect no-ops: a missing parcel or a
// repeated pickup yields ParcelsModified == 0 without an error.
type UpdateCounts struct {
	ParcelsModified int64
	RidersModified  int64
}
