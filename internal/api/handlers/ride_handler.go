package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesim/internal/domain/entities"
)

// RequestRideRequest is the JSON body for POST /rides.
type RequestRideRequest struct {
	RiderID string `json:"rider_id" binding:"required"`
	Pickup  struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pickup"`
	Dropoff struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"dropoff"`
}

// RequestRide handles POST /rides (spec.md §6 "request_ride"). A failed
// dispatch is not an HTTP error — it is a well-formed ride snapshot with
// status failed (spec.md §7), so this always returns 201 on success of the
// operation itself, regardless of the resulting ride status.
func (h *EngineHandler) RequestRide(c *gin.Context) {
	var req RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pickup := entities.Position{X: req.Pickup.X, Y: req.Pickup.Y}
	dropoff := entities.Position{X: req.Dropoff.X, Y: req.Dropoff.Y}

	ride, engErr := h.world.RequestRide(req.RiderID, pickup, dropoff)
	if engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.JSON(http.StatusCreated, ride)
}

// AcceptRide handles POST /rides/:id/accept (spec.md §6 "accept_ride").
func (h *EngineHandler) AcceptRide(c *gin.Context) {
	id := c.Param("id")
	ride, engErr := h.world.AcceptRide(id)
	if engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.JSON(http.StatusOK, ride)
}

// RejectRide handles POST /rides/:id/reject (spec.md §6 "reject_ride").
func (h *EngineHandler) RejectRide(c *gin.Context) {
	id := c.Param("id")
	ride, engErr := h.world.RejectRide(id)
	if engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.JSON(http.StatusOK, ride)
}
