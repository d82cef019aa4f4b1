package engine

import (
	"math"
	"sort"

	"ridesim/internal/domain/entities"
)

// dispatchKey is the lexicographic ordering tuple from spec.md §4.1:
// (eta, assigned_count, -idle_ticks), with idle_ticks = +inf for a driver
// that has never completed a ride. Negating idle here (rather than carrying
// a sign flag through the comparison) keeps selectDriver a single ascending
// minimum scan over plain integers.
type dispatchKey struct {
	eta           int
	assignedCount int
	negIdleTicks  int
	driverID      string
}

// less implements the total order: lexicographic on (eta, assignedCount,
// negIdleTicks), ties broken by ascending driver ID.
func (k dispatchKey) less(other dispatchKey) bool {
	if k.eta != other.eta {
		return k.eta < other.eta
	}
	if k.assignedCount != other.assignedCount {
		return k.assignedCount < other.assignedCount
	}
	if k.negIdleTicks != other.negIdleTicks {
		return k.negIdleTicks < other.negIdleTicks
	}
	return k.driverID < other.driverID
}

// selectDriver implements the Dispatcher component (spec.md §4.1):
// select_driver(ride, world) -> driver_id | none. It is a pure read over the
// driver collection; the caller (Ride Lifecycle) commits the result. Caller
// must hold w.mu.
func (w *World) selectDriver(ride *entities.Ride) (string, bool) {
	ids := make([]string, 0, len(w.drivers))
	for id := range w.drivers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		bestID  string
		bestKey dispatchKey
		found   bool
	)

	for _, id := range ids {
		driver := w.drivers[id]
		if !driver.IsAvailable() {
			continue
		}
		if ride.HasRejected(id) {
			continue
		}

		key := w.dispatchKeyFor(driver, ride)
		if !found || key.less(bestKey) {
			bestID = id
			bestKey = key
			found = true
		}
	}

	return bestID, found
}

// dispatchKeyFor computes the ordering tuple for a single eligible driver.
func (w *World) dispatchKeyFor(driver *entities.Driver, ride *entities.Ride) dispatchKey {
	eta := driver.Position.ManhattanDistance(ride.Pickup)

	idleTicks, everBusy := driver.IdleTicks(w.tick)
	negIdle := -idleTicks
	if !everBusy {
		// Maximally idle: spec.md §4.1 treats "never busy" as +inf idle time,
		// i.e. the smallest possible value of -idle_ticks.
		negIdle = math.MinInt
	}

	return dispatchKey{
		eta:           eta,
		assignedCount: driver.AssignedCount,
		negIdleTicks:  negIdle,
		driverID:      driver.ID,
	}
}
