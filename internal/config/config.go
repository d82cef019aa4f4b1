// Package config centralizes configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Go projects typically manage configuration via struct literals with
// defaults (used here), environment variables, config files, or flags.
// Typed structs give compile-time safety over raw strings/maps.
package config

import (
	"time"

	"ridesim/internal/domain/entities"
)

// Config is the top-level configuration container.
//
// Go Learning Note — Struct Composition:
// Go doesn't have classes or inheritance. Config "has a" ServerConfig and a
// GridConfig instead of inheriting from them — composition over inheritance.
type Config struct {
	Server ServerConfig
	Grid   GridConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GridConfig bounds the simulated city. The engine validates every incoming
// position against these bounds (spec.md §3).
type GridConfig struct {
	MinX, MinY int
	MaxX, MaxY int
}

// InBounds reports whether pos lies within the configured grid.
func (g GridConfig) InBounds(pos entities.Position) bool {
	return pos.X >= g.MinX && pos.X <= g.MaxX && pos.Y >= g.MinY && pos.Y <= g.MaxY
}

// LogConfig controls the zerolog writer/level used across the process.
type LogConfig struct {
	Level  string // one of: debug, info, warn, error
	Pretty bool   // console-writer formatting instead of JSON lines
}

// NewDefaultConfig returns a Config populated with the simulator's defaults:
// a 100x100 grid (spec.md §3) and a server listening on :8080.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Grid: GridConfig{
			MinX: entities.GridMin,
			MinY: entities.GridMin,
			MaxX: entities.GridMax,
			MaxY: entities.GridMax,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
