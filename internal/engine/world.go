// Package engine is the dispatch-and-simulation core: one locked root
// holding the tick counter and the three entity collections, plus the
// dispatcher, ride lifecycle, and tick algorithm that operate on it.
//
// Go Learning Note — World as the single locked root:
// The teacher pack splits storage into one repository per entity, each with
// its own sync.RWMutex, plus a separate TTL-based LockManager to prevent
// double-booking a driver across concurrent matching goroutines. spec.md §5
// rules that design out directly: every operation must be serializable as
// if executed against one single world-wide lock, with no suspension while
// holding it. So this package collapses storage down to one struct and one
// sync.Mutex, in the shape kcbsilva-TurboDriver's internal/dispatch.Store
// uses for the same reason (a single in-memory simulated system with no
// cross-instance coordination to worry about). Every exported method here
// acquires the lock for its entire duration and releases it on every exit
// path, including error returns — see each method below.
package engine

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"ridesim/internal/config"
	"ridesim/internal/domain/entities"
	"ridesim/pkg/utils"
)

// World is the single source of truth for the simulation: the tick counter
// and the three entity maps, all guarded by one mutex.
type World struct {
	mu sync.Mutex

	cfg *config.Config
	log zerolog.Logger

	tick    int
	drivers map[string]*entities.Driver
	riders  map[string]*entities.Rider
	rides   map[string]*entities.Ride

	// onChange, when set, is invoked with a fresh snapshot after every
	// mutating operation completes — the hook the websocket broadcaster
	// (internal/api/ws) attaches to push live updates to visualizers. It is
	// called synchronously after mu has been released (see withLock below).
	onChange func(StateSnapshot)
}

// NewWorld creates an empty World at tick 0.
func NewWorld(cfg *config.Config, log zerolog.Logger) *World {
	return &World{
		cfg:     cfg,
		log:     log,
		drivers: make(map[string]*entities.Driver),
		riders:  make(map[string]*entities.Rider),
		rides:   make(map[string]*entities.Ride),
	}
}

// OnChange registers a callback invoked with the resulting state snapshot
// after every operation that mutates the world. Only one subscriber is
// supported — the HTTP layer owns the hub and fans out from there.
func (w *World) OnChange(fn func(StateSnapshot)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// withLock runs fn while holding the world lock, then — after releasing it —
// notifies the onChange subscriber if one is registered. Every mutating
// World operation runs its whole body through withLock, which is what guarantees
// spec.md §5's "acquire for the entire duration, release on every exit path"
// rule without repeating defer/unlock boilerplate in each operation.
func (w *World) withLock(fn func()) StateSnapshot {
	w.mu.Lock()
	fn()
	snap := w.snapshotLocked()
	notify := w.onChange
	w.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
	return snap
}

// StateSnapshot is the flat value record returned by get_state and every
// mutating operation — spec.md §6: "Snapshots are flat value records."
// Go Learning Note — No Shared Memory Escape:
// Every field here is a plain value (or a slice of plain values) copied out
// of the locked maps, never a pointer to engine-owned state, so a caller
// holding onto a StateSnapshot cannot mutate the World by reaching through it
// (spec.md §5).
type StateSnapshot struct {
	Tick    int               `json:"tick"`
	Drivers []entities.Driver `json:"drivers"`
	Riders  []entities.Rider  `json:"riders"`
	Rides   []entities.Ride   `json:"rides"`
}

// snapshotLocked builds a StateSnapshot. Caller must hold w.mu.
func (w *World) snapshotLocked() StateSnapshot {
	drivers := make([]entities.Driver, 0, len(w.drivers))
	ids := make([]string, 0, len(w.drivers))
	for id := range w.drivers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		drivers = append(drivers, copyDriver(w.drivers[id]))
	}

	riders := make([]entities.Rider, 0, len(w.riders))
	ids = ids[:0]
	for id := range w.riders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		riders = append(riders, *w.riders[id])
	}

	rides := make([]entities.Ride, 0, len(w.rides))
	ids = ids[:0]
	for id := range w.rides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rides = append(rides, copyRide(w.rides[id]))
	}

	return StateSnapshot{
		Tick:    w.tick,
		Drivers: drivers,
		Riders:  riders,
		Rides:   rides,
	}
}

// copyDriver clones the mutable fields of a Driver (the LastBusyTick
// pointer) so a returned snapshot cannot be used to mutate engine state.
func copyDriver(d *entities.Driver) entities.Driver {
	cp := *d
	if d.LastBusyTick != nil {
		tick := *d.LastBusyTick
		cp.LastBusyTick = &tick
	}
	return cp
}

// copyRide clones the rejection-set slice for the same reason.
func copyRide(r *entities.Ride) entities.Ride {
	cp := *r
	cp.RejectedDriverIDs = append([]string(nil), r.RejectedDriverIDs...)
	return cp
}

// State returns the current snapshot without mutating anything (get_state).
func (w *World) State() StateSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Reset restores tick=0 and empty collections (spec.md §3 "Lifecycle").
// reset ∘ reset = reset trivially, since there is no state left to depend on.
func (w *World) Reset() StateSnapshot {
	return w.withLock(func() {
		w.tick = 0
		w.drivers = make(map[string]*entities.Driver)
		w.riders = make(map[string]*entities.Rider)
		w.rides = make(map[string]*entities.Ride)
	})
}

// CreateDriver validates the position, resolves or generates the driver ID,
// and inserts a new Available driver.
func (w *World) CreateDriver(id string, pos entities.Position) (entities.Driver, *Error) {
	var result entities.Driver
	var opErr *Error

	w.withLock(func() {
		if !w.cfg.Grid.InBounds(pos) {
			opErr = invalidf("position %s out of range", pos)
			return
		}
		if id != "" {
			if _, exists := w.drivers[id]; exists {
				opErr = conflictf("driver %q already exists", id)
				return
			}
		} else {
			id = utils.GenerateID("driver")
		}

		driver := entities.NewDriver(id, pos)
		w.drivers[id] = driver
		result = *driver
		w.log.Info().Str("driver_id", id).Str("pos", pos.String()).Msg("driver created")
	})
	return result, opErr
}

// DeleteDriver removes a driver, cascading any bound ride to Failed
// (spec.md §4.2 "delete_driver").
func (w *World) DeleteDriver(id string) *Error {
	var opErr *Error
	w.withLock(func() {
		driver, exists := w.drivers[id]
		if !exists {
			opErr = notFoundf("driver %q not found", id)
			return
		}
		if driver.CurrentRideID != "" {
			if ride, ok := w.rides[driver.CurrentRideID]; ok && !ride.IsTerminal() {
				ride.Fail()
				w.log.Warn().Str("driver_id", id).Str("ride_id", ride.ID).
					Msg("ride failed: bound driver deleted")
			}
		}
		delete(w.drivers, id)
		w.log.Info().Str("driver_id", id).Msg("driver deleted")
	})
	return opErr
}

// CreateRider validates the position, resolves or generates the rider ID,
// and inserts a new rider.
func (w *World) CreateRider(id string, pos entities.Position) (entities.Rider, *Error) {
	var result entities.Rider
	var opErr *Error

	w.withLock(func() {
		if !w.cfg.Grid.InBounds(pos) {
			opErr = invalidf("position %s out of range", pos)
			return
		}
		if id != "" {
			if _, exists := w.riders[id]; exists {
				opErr = conflictf("rider %q already exists", id)
				return
			}
		} else {
			id = utils.GenerateID("rider")
		}

		rider := entities.NewRider(id, pos)
		w.riders[id] = rider
		result = *rider
		w.log.Info().Str("rider_id", id).Str("pos", pos.String()).Msg("rider created")
	})
	return result, opErr
}

// DeleteRider removes a rider, cascading any non-terminal ride for them to
// Failed and releasing their bound driver if any (spec.md §4.2
// "delete_rider").
func (w *World) DeleteRider(id string) *Error {
	var opErr *Error
	w.withLock(func() {
		if _, exists := w.riders[id]; !exists {
			opErr = notFoundf("rider %q not found", id)
			return
		}

		for _, ride := range w.rides {
			if ride.RiderID != id {
				continue
			}
			switch ride.Status {
			case entities.RideStatusWaiting, entities.RideStatusAwaitingAccept, entities.RideStatusInProgress:
				if ride.DriverID != "" {
					if driver, ok := w.drivers[ride.DriverID]; ok {
						driver.Release()
					}
				}
				ride.Fail()
				w.log.Warn().Str("rider_id", id).Str("ride_id", ride.ID).
					Msg("ride failed: rider deleted")
			}
		}

		delete(w.riders, id)
		w.log.Info().Str("rider_id", id).Msg("rider deleted")
	})
	return opErr
}
