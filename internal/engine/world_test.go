package engine

import (
	"testing"

	"github.com/rs/zerolog"

	"ridesim/internal/config"
	"ridesim/internal/domain/entities"
)

func newTestWorld() *World {
	return NewWorld(config.NewDefaultConfig(), zerolog.Nop())
}

func pos(x, y int) entities.Position {
	return entities.Position{X: x, Y: y}
}

func TestCreateDriver_GeneratesIDWhenOmitted(t *testing.T) {
	w := newTestWorld()

	d, err := w.CreateDriver("", pos(1, 1))
	if err != nil {
		t.Fatalf("CreateDriver failed: %v", err)
	}
	if d.ID == "" {
		t.Error("expected a generated driver id")
	}
	if d.Status != entities.DriverStatusAvailable {
		t.Errorf("expected available, got %s", d.Status)
	}
}

func TestCreateDriver_DuplicateIDConflicts(t *testing.T) {
	w := newTestWorld()

	if _, err := w.CreateDriver("d1", pos(0, 0)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := w.CreateDriver("d1", pos(0, 0))
	if err == nil || err.Kind != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateDriver_OutOfRangeRejected(t *testing.T) {
	w := newTestWorld()

	_, err := w.CreateDriver("d1", pos(-1, 0))
	if err == nil || err.Kind != KindInvalidInput {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestDeleteDriver_Unknown(t *testing.T) {
	w := newTestWorld()

	err := w.DeleteDriver("ghost")
	if err == nil || err.Kind != KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestDeleteDriver_CascadesBoundRideToFailed(t *testing.T) {
	w := newTestWorld()
	w.CreateDriver("d1", pos(0, 0))
	w.CreateRider("r1", pos(2, 0))

	ride, err := w.RequestRide("r1", pos(2, 0), pos(5, 0))
	if err != nil {
		t.Fatalf("RequestRide failed: %v", err)
	}
	if ride.Status != entities.RideStatusAwaitingAccept {
		t.Fatalf("expected awaiting_accept, got %s", ride.Status)
	}

	if err := w.DeleteDriver("d1"); err != nil {
		t.Fatalf("DeleteDriver failed: %v", err)
	}

	state := w.State()
	if len(state.Rides) != 1 || state.Rides[0].Status != entities.RideStatusFailed {
		t.Fatalf("expected ride failed on driver delete, got %+v", state.Rides)
	}
}

func TestDeleteRider_CascadesAndReleasesDriver(t *testing.T) {
	w := newTestWorld()
	w.CreateDriver("d1", pos(0, 0))
	w.CreateRider("r1", pos(0, 0))

	ride, err := w.RequestRide("r1", pos(0, 0), pos(5, 0))
	if err != nil {
		t.Fatalf("RequestRide failed: %v", err)
	}
	if ride.Status != entities.RideStatusAwaitingAccept {
		t.Fatalf("expected awaiting_accept, got %s", ride.Status)
	}

	if err := w.DeleteRider("r1"); err != nil {
		t.Fatalf("DeleteRider failed: %v", err)
	}

	state := w.State()
	if state.Rides[0].Status != entities.RideStatusFailed {
		t.Fatalf("expected ride failed on rider delete, got %s", state.Rides[0].Status)
	}
	if state.Drivers[0].Status != entities.DriverStatusAvailable {
		t.Fatalf("expected driver released to available, got %s", state.Drivers[0].Status)
	}
	if state.Drivers[0].CurrentRideID != "" {
		t.Errorf("expected current_ride_id cleared, got %q", state.Drivers[0].CurrentRideID)
	}
}

func TestReset_RestoresEmptyWorldAtTickZero(t *testing.T) {
	w := newTestWorld()
	w.CreateDriver("d1", pos(0, 0))
	w.CreateRider("r1", pos(0, 0))
	w.Tick()
	w.Tick()

	state := w.Reset()
	if state.Tick != 0 {
		t.Errorf("expected tick 0 after reset, got %d", state.Tick)
	}
	if len(state.Drivers) != 0 || len(state.Riders) != 0 || len(state.Rides) != 0 {
		t.Errorf("expected empty collections after reset, got %+v", state)
	}

	// reset is idempotent: reset twice matches reset once.
	state2 := w.Reset()
	if state2.Tick != 0 || len(state2.Drivers) != 0 {
		t.Errorf("reset is not idempotent: %+v", state2)
	}
}

func TestSnapshot_DoesNotShareMemoryWithWorld(t *testing.T) {
	w := newTestWorld()
	w.CreateDriver("d1", pos(0, 0))

	snap := w.State()
	snap.Drivers[0].Position.X = 99
	snap.Drivers[0].AssignedCount = 1000

	again := w.State()
	if again.Drivers[0].Position.X == 99 {
		t.Error("mutating a returned snapshot leaked into world state")
	}
	if again.Drivers[0].AssignedCount == 1000 {
		t.Error("mutating a returned snapshot leaked into world state")
	}
}
