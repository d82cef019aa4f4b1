package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesim/internal/domain/entities"
)

// CreateDriverRequest is the JSON body for POST /drivers.
// X and Y deliberately have no `binding:"required"` tag: gin's validator
// treats an int's zero value as "missing", which would reject every
// legitimate position on the grid's edges (spec.md §3, 0 <= x,y <= 99).
type CreateDriverRequest struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// CreateDriver handles POST /drivers (spec.md §6 "create_driver").
func (h *EngineHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, engErr := h.world.CreateDriver(req.ID, entities.Position{X: req.X, Y: req.Y})
	if engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// DeleteDriver handles DELETE /drivers/:id (spec.md §6 "delete_driver").
func (h *EngineHandler) DeleteDriver(c *gin.Context) {
	id := c.Param("id")
	if engErr := h.world.DeleteDriver(id); engErr != nil {
		writeEngineError(c, engErr)
		return
	}
	c.Status(http.StatusNoContent)
}
