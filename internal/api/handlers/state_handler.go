package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetState handles GET /state (spec.md §6 "get_state").
func (h *EngineHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.world.State())
}

// Tick handles POST /tick (spec.md §6 "tick").
func (h *EngineHandler) Tick(c *gin.Context) {
	c.JSON(http.StatusOK, h.world.Tick())
}

// Reset handles POST /reset (spec.md §6 "reset").
func (h *EngineHandler) Reset(c *gin.Context) {
	c.JSON(http.StatusOK, h.world.Reset())
}
