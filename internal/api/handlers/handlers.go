// Package handlers contains HTTP handler functions that translate between
// HTTP requests/responses and the engine's operation contracts (spec.md §6).
//
// Go Learning Note — Handler Responsibility:
// Handlers should only do three things: parse and validate the incoming
// request, call the appropriate engine operation, and map the result to an
// HTTP response. The dispatch/lifecycle/tick logic belongs in
// internal/engine, not here — this mirrors the teacher pack's
// handlers-are-thin convention.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesim/internal/engine"
)

// EngineHandler groups every HTTP endpoint the simulator exposes. A single
// struct (rather than one per entity, as the teacher splits rides/drivers/
// locations across three handlers) fits here because every operation in
// spec.md §6 goes through the same single World.
type EngineHandler struct {
	world *engine.World
}

// NewEngineHandler creates an EngineHandler bound to world.
func NewEngineHandler(world *engine.World) *EngineHandler {
	return &EngineHandler{world: world}
}

// writeEngineError maps an *engine.Error to an HTTP status using its Kind —
// the same sentinel-to-status switch the teacher's handlers use, generalized
// to the engine's single typed Error instead of one bare errors.New per case.
func writeEngineError(c *gin.Context, err *engine.Error) {
	status := http.StatusInternalServerError
	switch err.Kind {
	case engine.KindNotFound:
		status = http.StatusNotFound
	case engine.KindConflict:
		status = http.StatusConflict
	case engine.KindInvalidInput:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Message, "kind": err.Kind.String()})
}
