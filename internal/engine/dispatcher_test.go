package engine

import (
	"testing"

	"ridesim/internal/domain/entities"
)

// TestDispatcher_FairnessAcrossEqualETA is seed scenario 5 (spec.md §8):
// equal ETA, lower assigned_count wins.
func TestDispatcher_FairnessAcrossEqualETA(t *testing.T) {
	w := newTestWorld()
	w.tick = 10

	busyAt := 5
	w.drivers["d1"] = &entities.Driver{ID: "d1", Position: pos(0, 0), Status: entities.DriverStatusAvailable, AssignedCount: 2, LastBusyTick: &busyAt}
	w.drivers["d2"] = &entities.Driver{ID: "d2", Position: pos(0, 0), Status: entities.DriverStatusAvailable, AssignedCount: 1, LastBusyTick: &busyAt}

	ride := entities.NewRide("ride-1", "r1", pos(0, 0), pos(1, 0))
	id, ok := w.selectDriver(ride)
	if !ok || id != "d2" {
		t.Fatalf("expected d2 selected for lower assigned_count, got %q (ok=%v)", id, ok)
	}
}

// TestDispatcher_IdleTimeTiebreak is seed scenario 6: equal ETA and
// assigned_count, the more idle driver wins.
func TestDispatcher_IdleTimeTiebreak(t *testing.T) {
	w := newTestWorld()
	w.tick = 10

	busy1, busy2 := 2, 8
	w.drivers["d1"] = &entities.Driver{ID: "d1", Position: pos(0, 0), Status: entities.DriverStatusAvailable, AssignedCount: 1, LastBusyTick: &busy1}
	w.drivers["d2"] = &entities.Driver{ID: "d2", Position: pos(0, 0), Status: entities.DriverStatusAvailable, AssignedCount: 1, LastBusyTick: &busy2}

	ride := entities.NewRide("ride-1", "r1", pos(0, 0), pos(1, 0))
	id, ok := w.selectDriver(ride)
	if !ok || id != "d1" {
		t.Fatalf("expected d1 selected for larger idle time (8 > 2), got %q (ok=%v)", id, ok)
	}
}

func TestDispatcher_NeverBusyIsMaximallyIdle(t *testing.T) {
	w := newTestWorld()
	w.tick = 100

	busyAt := 99
	w.drivers["d1"] = &entities.Driver{ID: "d1", Position: pos(0, 0), Status: entities.DriverStatusAvailable, AssignedCount: 0, LastBusyTick: &busyAt}
	w.drivers["d2"] = &entities.Driver{ID: "d2", Position: pos(0, 0), Status: entities.DriverStatusAvailable, AssignedCount: 0}

	ride := entities.NewRide("ride-1", "r1", pos(0, 0), pos(1, 0))
	id, ok := w.selectDriver(ride)
	if !ok || id != "d2" {
		t.Fatalf("expected never-busy d2 to win as maximally idle, got %q (ok=%v)", id, ok)
	}
}

func TestDispatcher_IgnoresRejectedAndUnavailableDrivers(t *testing.T) {
	w := newTestWorld()

	w.drivers["d1"] = &entities.Driver{ID: "d1", Position: pos(0, 0), Status: entities.DriverStatusAvailable}
	w.drivers["d2"] = &entities.Driver{ID: "d2", Position: pos(0, 0), Status: entities.DriverStatusOnTrip}

	ride := entities.NewRide("ride-1", "r1", pos(0, 0), pos(1, 0))
	ride.AddRejected("d1")

	_, ok := w.selectDriver(ride)
	if ok {
		t.Fatal("expected no eligible driver: d1 rejected, d2 on_trip")
	}
}

func TestDispatcher_TieBreaksByAscendingID(t *testing.T) {
	w := newTestWorld()

	w.drivers["zeta"] = &entities.Driver{ID: "zeta", Position: pos(0, 0), Status: entities.DriverStatusAvailable}
	w.drivers["alpha"] = &entities.Driver{ID: "alpha", Position: pos(0, 0), Status: entities.DriverStatusAvailable}

	ride := entities.NewRide("ride-1", "r1", pos(0, 0), pos(1, 0))
	id, ok := w.selectDriver(ride)
	if !ok || id != "alpha" {
		t.Fatalf("expected alpha to win identical keys by id order, got %q", id)
	}
}

func TestDispatcher_DeterministicAcrossRepeatedCalls(t *testing.T) {
	w := newTestWorld()
	w.drivers["d1"] = &entities.Driver{ID: "d1", Position: pos(3, 3), Status: entities.DriverStatusAvailable}
	w.drivers["d2"] = &entities.Driver{ID: "d2", Position: pos(1, 1), Status: entities.DriverStatusAvailable}

	ride := entities.NewRide("ride-1", "r1", pos(0, 0), pos(1, 0))
	id1, _ := w.selectDriver(ride)
	id2, _ := w.selectDriver(ride)
	if id1 != id2 {
		t.Fatalf("dispatcher not deterministic: %q then %q", id1, id2)
	}
}
