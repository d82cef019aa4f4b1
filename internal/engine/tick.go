package engine

import (
	"sort"

	"ridesim/internal/domain/entities"
)

// Tick implements spec.md §4.3's Tick Engine: advance the simulation by one
// unit. It is atomic with respect to external observation because the whole
// body runs inside withLock.
func (w *World) Tick() StateSnapshot {
	return w.withLock(func() {
		w.tick++

		ids := make([]string, 0, len(w.drivers))
		for id := range w.drivers {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			driver := w.drivers[id]
			if driver.Status != entities.DriverStatusOnTrip {
				continue
			}
			w.advanceDriver(driver)
		}
	})
}

// advanceDriver runs one driver's movement/phase-transition step for the
// current tick (spec.md §4.3 steps 1-3). Caller must hold w.mu.
func (w *World) advanceDriver(driver *entities.Driver) {
	ride, ok := w.rides[driver.CurrentRideID]
	if !ok {
		return
	}

	target := ride.Pickup
	if driver.IsHeadingToDropoff {
		target = ride.Dropoff
	}

	if driver.Position == target {
		if !driver.IsHeadingToDropoff {
			// Already at pickup when the tick begins (pickup was the driver's
			// own position at accept): the phase flips but the driver does
			// not move this tick (spec.md §4.3 step 2, "deliberate phase
			// boundary").
			driver.IsHeadingToDropoff = true
			return
		}
		w.completeRide(ride, driver)
		return
	}

	w.stepToward(driver, target)

	// Arriving by this tick's step fires the phase transition in the same
	// tick: reaching pickup flips to the dropoff phase (the driver stays there
	// until the next tick), reaching dropoff completes the ride.
	if driver.Position == target {
		if !driver.IsHeadingToDropoff {
			driver.IsHeadingToDropoff = true
			return
		}
		w.completeRide(ride, driver)
	}
}

// stepToward moves driver exactly one grid cell toward target, x before y
// (spec.md §4.3 step 3's axis-priority pathing).
func (w *World) stepToward(driver *entities.Driver, target entities.Position) {
	switch {
	case driver.Position.X != target.X:
		driver.Position.X += sign(target.X - driver.Position.X)
	default:
		driver.Position.Y += sign(target.Y - driver.Position.Y)
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// completeRide implements spec.md §4.2 "complete_ride": the driver has
// reached the dropoff. Caller must hold w.mu.
func (w *World) completeRide(ride *entities.Ride, driver *entities.Driver) {
	if rider, ok := w.riders[ride.RiderID]; ok {
		rider.Position = ride.Dropoff
	}
	driver.Complete(w.tick)
	ride.Complete()
	w.log.Info().Str("ride_id", ride.ID).Str("driver_id", driver.ID).
		Int("tick", w.tick).Msg("ride completed")
}
