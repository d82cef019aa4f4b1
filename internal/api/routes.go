// Package api wires together HTTP routes, middleware, and handlers.
//
// Go Learning Note — Package Naming:
// Go packages are named after what they provide, not what they contain. "api"
// is a good name because this package provides the API layer.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ridesim/internal/api/handlers"
	"ridesim/internal/api/middleware"
	"ridesim/internal/api/ws"
)

// Router holds references to all HTTP handlers and configures URL routing.
// It acts as the composition root for the HTTP layer.
type Router struct {
	engineHandler *handlers.EngineHandler
	hub           *ws.Hub
	log           zerolog.Logger
}

// NewRouter creates a Router with all required handler dependencies.
func NewRouter(engineHandler *handlers.EngineHandler, hub *ws.Hub, log zerolog.Logger) *Router {
	return &Router{engineHandler: engineHandler, hub: hub, log: log}
}

// Setup registers all routes and middleware on the Gin engine.
//
// Go Learning Note — no auth middleware here:
// spec.md's Non-goals explicitly rule out authentication and multi-tenant
// isolation for this simulator, unlike the teacher's MockAuth/RequireRider
// group. CORS and structured request logging are kept regardless — those are
// ambient transport concerns, not features the spec excludes.
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Logging(r.log))
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/state", r.engineHandler.GetState)
	engine.POST("/tick", r.engineHandler.Tick)
	engine.POST("/reset", r.engineHandler.Reset)

	engine.POST("/drivers", r.engineHandler.CreateDriver)
	engine.DELETE("/drivers/:id", r.engineHandler.DeleteDriver)

	engine.POST("/riders", r.engineHandler.CreateRider)
	engine.DELETE("/riders/:id", r.engineHandler.DeleteRider)

	engine.POST("/rides", r.engineHandler.RequestRide)
	engine.POST("/rides/:id/accept", r.engineHandler.AcceptRide)
	engine.POST("/rides/:id/reject", r.engineHandler.RejectRide)

	// Live state feed for the browser visualizer — pushed after every
	// mutating operation via engine.World's OnChange hook (see cmd/server).
	engine.GET("/ws", func(c *gin.Context) {
		if err := r.hub.ServeWS(c.Request, c.Writer); err != nil {
			r.log.Warn().Err(err).Msg("websocket upgrade failed")
		}
	})
}
