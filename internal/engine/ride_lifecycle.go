package engine

import (
	"ridesim/internal/domain/entities"
	"ridesim/pkg/utils"
)

// RequestRide implements spec.md §4.2 "request_ride": validate, create a
// waiting ride, then attempt an immediate dispatch.
func (w *World) RequestRide(riderID string, pickup, dropoff entities.Position) (entities.Ride, *Error) {
	var result entities.Ride
	var opErr *Error

	w.withLock(func() {
		if _, exists := w.riders[riderID]; !exists {
			opErr = notFoundf("rider %q not found", riderID)
			return
		}
		if !w.cfg.Grid.InBounds(pickup) {
			opErr = invalidf("pickup position %s out of range", pickup)
			return
		}
		if !w.cfg.Grid.InBounds(dropoff) {
			opErr = invalidf("dropoff position %s out of range", dropoff)
			return
		}

		rideID := utils.GenerateID("ride")
		ride := entities.NewRide(rideID, riderID, pickup, dropoff)
		w.rides[rideID] = ride

		w.dispatchOrFail(ride)
		result = copyRide(ride)
		w.log.Info().Str("ride_id", rideID).Str("rider_id", riderID).
			Str("status", string(ride.Status)).Msg("ride requested")
	})
	return result, opErr
}

// dispatchOrFail runs the dispatcher against ride and either binds the
// winning driver (ride.BindDriver / driver.AssignTo, per request_ride step 4
// and reject_ride's re-dispatch) or fails the ride when no candidate exists.
// Caller must hold w.mu.
func (w *World) dispatchOrFail(ride *entities.Ride) {
	driverID, found := w.selectDriver(ride)
	if !found {
		ride.Fail()
		return
	}
	driver := w.drivers[driverID]
	driver.AssignTo(ride.ID)
	ride.BindDriver(driverID)
}

// AcceptRide implements spec.md §4.2 "accept_ride".
func (w *World) AcceptRide(rideID string) (entities.Ride, *Error) {
	var result entities.Ride
	var opErr *Error

	w.withLock(func() {
		ride, exists := w.rides[rideID]
		if !exists {
			opErr = notFoundf("ride %q not found", rideID)
			return
		}
		if ride.Status != entities.RideStatusAwaitingAccept {
			opErr = conflictf("ride %q is not awaiting acceptance", rideID)
			return
		}
		driver, exists := w.drivers[ride.DriverID]
		if !exists || driver.Status != entities.DriverStatusAssigned || driver.CurrentRideID != ride.ID {
			opErr = conflictf("ride %q has no driver bound and assigned", rideID)
			return
		}

		driver.StartTrip()
		ride.Start()
		result = copyRide(ride)
		w.log.Info().Str("ride_id", rideID).Str("driver_id", driver.ID).Msg("ride accepted")
	})
	return result, opErr
}

// RejectRide implements spec.md §4.2 "reject_ride": add the bound driver to
// the rejection set, unbind, then attempt re-dispatch.
func (w *World) RejectRide(rideID string) (entities.Ride, *Error) {
	var result entities.Ride
	var opErr *Error

	w.withLock(func() {
		ride, exists := w.rides[rideID]
		if !exists {
			opErr = notFoundf("ride %q not found", rideID)
			return
		}
		if ride.Status != entities.RideStatusAwaitingAccept {
			opErr = conflictf("ride %q is not awaiting acceptance", rideID)
			return
		}
		driver, exists := w.drivers[ride.DriverID]
		if !exists {
			opErr = conflictf("ride %q has no driver bound", rideID)
			return
		}

		ride.AddRejected(driver.ID)
		driver.Release()
		ride.Unbind()

		w.dispatchOrFail(ride)
		result = copyRide(ride)
		w.log.Info().Str("ride_id", rideID).Str("status", string(ride.Status)).
			Msg("ride rejected")
	})
	return result, opErr
}
