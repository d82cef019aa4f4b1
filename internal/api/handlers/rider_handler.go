package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesim/internal/domain/entities"
)

// CreateRiderRequest is the JSON body for POST /riders. X and Y carry no
// `binding:"required"` tag for the same reason as CreateDriverRequest.
type CreateRiderRequest struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// CreateRider handles POST /riders (spec.md §6 "create_rider").
func (h *EngineHandler) CreateRider(c *gin.Context) {
	var req CreateRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rider, engErr := h.world.CreateRider(req.ID, entities.Position{X: req.X, Y: req.Y})
	if engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.JSON(http.StatusCreated, rider)
}

// DeleteRider handles DELETE /riders/:id (spec.md §6 "delete_rider").
func (h *EngineHandler) DeleteRider(c *gin.Context) {
	id := c.Param("id")
	if engErr := h.world.DeleteRider(id); engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.Status(http.StatusNoContent)
}
