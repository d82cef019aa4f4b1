package entities

// DriverStatus is a typed string enum representing the driver's current
// state. String-based enums are preferred here because this value is the
// wire encoding returned to callers (see spec.md §3).
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusAssigned  DriverStatus = "assigned"
	DriverStatusOnTrip    DriverStatus = "on_trip"
	DriverStatusOffline   DriverStatus = "offline"
)

// Driver represents a driver in the simulation.
//
// LastBusyTick is a *int rather than int because "never been busy" is a
// distinct value from "busy at tick 0" — the dispatcher treats the former as
// infinitely idle (spec.md §4.1). A pointer is the idiomatic way to model an
// optional scalar in Go without a separate "has value" boolean.
type Driver struct {
	ID                 string       `json:"id"`
	Position           Position     `json:"position"`
	Status             DriverStatus `json:"status"`
	AssignedCount      int          `json:"assigned_count"`
	LastBusyTick       *int         `json:"last_busy_tick,omitempty"`
	CurrentRideID      string       `json:"current_ride_id,omitempty"`
	IsHeadingToDropoff bool         `json:"is_heading_to_dropoff"`
}

// NewDriver creates a Driver at the given position, starting in the
// Available state with no ride history.
func NewDriver(id string, pos Position) *Driver {
	return &Driver{
		ID:       id,
		Position: pos,
		Status:   DriverStatusAvailable,
	}
}

// IsAvailable reports whether the driver is eligible for dispatch.
func (d *Driver) IsAvailable() bool {
	return d.Status == DriverStatusAvailable
}

// IdleTicks returns the number of ticks since the driver's most recent
// completion with everBusy true, or (0, false) if the driver has never
// completed a ride — "infinitely idle" per spec.md §4.1's dispatcher ordering.
func (d *Driver) IdleTicks(currentTick int) (ticks int, everBusy bool) {
	if d.LastBusyTick == nil {
		return 0, false
	}
	return currentTick - *d.LastBusyTick, true
}

// AssignTo binds the driver to a ride awaiting the driver's acceptance
// (status -> assigned). Called by the ride lifecycle, never directly by
// transport code.
func (d *Driver) AssignTo(rideID string) {
	d.Status = DriverStatusAssigned
	d.CurrentRideID = rideID
}

// StartTrip transitions an assigned driver into on_trip after the driver
// accepts the ride, resetting the pickup/dropoff phase flag and bumping the lifetime
// acceptance counter (spec.md I5).
func (d *Driver) StartTrip() {
	d.Status = DriverStatusOnTrip
	d.IsHeadingToDropoff = false
	d.AssignedCount++
}

// Release returns the driver to Available and clears all ride linkage. Used
// on rejection, completion, and cascade failure.
func (d *Driver) Release() {
	d.Status = DriverStatusAvailable
	d.CurrentRideID = ""
	d.IsHeadingToDropoff = false
}

// Complete releases the driver and records the tick at which the ride ended,
// so subsequent dispatch rounds can compute idle time (spec.md I6).
func (d *Driver) Complete(tick int) {
	d.Release()
	completedAt := tick
	d.LastBusyTick = &completedAt
}
