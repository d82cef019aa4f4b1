// Package main is the entry point for the ride-dispatch simulator server.
//
// Go Learning Note — "cmd/" directory convention:
// In idiomatic Go projects, executables live under cmd/<name>/main.go. This
// keeps the project root clean and allows multiple binaries in one repo
// (e.g., cmd/server/, cmd/seed/). Each subdirectory under cmd/ must be
// package main with a main() function.
//
// Go Learning Note — Dependency Injection:
// Go does not have a built-in DI framework. Dependencies are wired manually
// in main(): construct each layer (config -> engine -> handlers -> router)
// and pass dependencies as constructor arguments, the same composition-root
// shape the teacher's cmd/server/main.go uses.
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ridesim/internal/api"
	"ridesim/internal/api/handlers"
	"ridesim/internal/api/ws"
	"ridesim/internal/config"
	"ridesim/internal/engine"
)

func main() {
	cfg := config.NewDefaultConfig()

	log := newLogger(cfg.Log)

	world := engine.NewWorld(cfg, log)

	// Live state feed: every mutating World operation notifies the hub with
	// a fresh snapshot, which fans it out to every connected visualizer.
	hub := ws.NewHub(log)
	go hub.Run()
	world.OnChange(hub.Broadcast)

	engineHandler := handlers.NewEngineHandler(world)
	router := api.NewRouter(engineHandler, hub, log)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpEngine := gin.New()
	httpEngine.Use(gin.Recovery())
	router.Setup(httpEngine)

	log.Info().Str("port", cfg.Server.Port).Msg("starting ride-dispatch simulator")
	if err := httpEngine.Run(cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// newLogger configures zerolog the way artpromedia-ubi's services do: a
// console writer for local/dev readability, JSON lines otherwise.
func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
