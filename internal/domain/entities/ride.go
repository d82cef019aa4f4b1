package entities

// RideStatus represents the current lifecycle state of a ride.
//
// Go Learning Note — State Machines in Go:
// The teacher pattern for this file is a generic `validTransitions` map plus
// a single TransitionTo() — fine when every legal move depends only on the
// current status. Here it doesn't: e.g. reject_ride only applies to a ride
// that is awaiting_accept AND still has its driver bound, and the outcome
// (re-offered vs failed) depends on whether the dispatcher finds a new
// candidate, not just the status name. So the legality/outcome of a move
// lives in the engine's ride-lifecycle operations, not in a table here.
// validTransitions below is kept as a narrower sanity check behind
// CanTransitionTo; the engine's operations do not consult it.
type RideStatus string

const (
	RideStatusWaiting        RideStatus = "waiting"
	RideStatusAssigned       RideStatus = "assigned"
	RideStatusAwaitingAccept RideStatus = "awaiting_accept"
	RideStatusRejected       RideStatus = "rejected"
	RideStatusInProgress     RideStatus = "in_progress"
	RideStatusCompleted      RideStatus = "completed"
	RideStatusFailed         RideStatus = "failed"
)

// validTransitions enumerates the moves the engine ever makes. RideStatusAssigned
// and RideStatusRejected are legal wire values the engine never produces —
// see DESIGN.md's notes on the two unreached statuses in the source taxonomy.
var validTransitions = map[RideStatus][]RideStatus{
	RideStatusWaiting:        {RideStatusAwaitingAccept, RideStatusFailed},
	RideStatusAwaitingAccept: {RideStatusInProgress, RideStatusWaiting, RideStatusFailed},
	RideStatusInProgress:     {RideStatusCompleted, RideStatusFailed},
	RideStatusCompleted:      {},
	RideStatusFailed:         {},
	RideStatusAssigned:       {},
	RideStatusRejected:       {},
}

// Ride is the central domain entity. It tracks a trip from request through
// completion or failure, including the driver currently bound (if any) and
// the set of drivers who have already declined it.
//
// Go Learning Note — "omitempty" Struct Tag:
// DriverID is tagged `omitempty` because spec.md §3 says it's present iff
// status is awaiting_accept or in_progress (optionally preserved on a
// terminal status) — an empty string cleanly doubles as "absent" on the wire.
type Ride struct {
	ID                string     `json:"id"`
	RiderID           string     `json:"rider_id"`
	Pickup            Position   `json:"pickup"`
	Dropoff           Position   `json:"dropoff"`
	Status            RideStatus `json:"status"`
	DriverID          string     `json:"driver_id,omitempty"`
	RejectedDriverIDs []string   `json:"rejected_driver_ids"`
}

// NewRide creates a Ride in the Waiting state with an empty rejection set.
func NewRide(id, riderID string, pickup, dropoff Position) *Ride {
	return &Ride{
		ID:                id,
		RiderID:           riderID,
		Pickup:            pickup,
		Dropoff:           dropoff,
		Status:            RideStatusWaiting,
		RejectedDriverIDs: []string{},
	}
}

// IsTerminal reports whether the ride has reached a status spec.md I8 treats
// as immutable (aside from cascade driver-linkage cleanup).
func (r *Ride) IsTerminal() bool {
	switch r.Status {
	case RideStatusCompleted, RideStatusFailed, RideStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if moving to newStatus is a sanity-valid move from
// the ride's current status.
func (r *Ride) CanTransitionTo(newStatus RideStatus) bool {
	allowed, exists := validTransitions[r.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// HasRejected reports whether driverID is already in the rejection set
// (spec.md I7: no duplicates).
func (r *Ride) HasRejected(driverID string) bool {
	for _, id := range r.RejectedDriverIDs {
		if id == driverID {
			return true
		}
	}
	return false
}

// AddRejected appends driverID to the rejection set if not already present.
func (r *Ride) AddRejected(driverID string) {
	if r.HasRejected(driverID) {
		return
	}
	r.RejectedDriverIDs = append(r.RejectedDriverIDs, driverID)
}

// BindDriver records that driverID is the candidate awaiting acceptance.
func (r *Ride) BindDriver(driverID string) {
	r.DriverID = driverID
	r.Status = RideStatusAwaitingAccept
}

// Unbind clears the driver linkage and returns the ride to Waiting, ahead of
// a re-dispatch attempt (reject_ride) or terminal failure.
func (r *Ride) Unbind() {
	r.DriverID = ""
	r.Status = RideStatusWaiting
}

// Fail transitions the ride to Failed. DriverID is intentionally left as-is
// so cascade failures retain the audit trail spec.md §4.2 calls for.
func (r *Ride) Fail() {
	r.Status = RideStatusFailed
}

// Start transitions an accepted ride into InProgress.
func (r *Ride) Start() {
	r.Status = RideStatusInProgress
}

// Complete transitions the ride to Completed.
func (r *Ride) Complete() {
	r.Status = RideStatusCompleted
}
