// Package utils provides shared helpers used across the application.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is intended to be importable by external projects (unlike
// internal/ which is compiler-enforced private). This is a community
// convention, not a Go language feature.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a fresh identifier prefixed with kind (e.g. "driver",
// "rider", "ride"), so entities generated by the engine remain readable in
// logs even though the collision-avoidance comes from the UUID suffix.
//
// Go Learning Note — "github.com/google/uuid":
// uuid.New() creates a v4 (random) UUID. Collision probability is
// astronomically low (1 in 2^122), which is what makes it safe to generate
// IDs without any central counter or coordination — useful here since
// caller-supplied IDs and generated IDs share the same identifier space.
func GenerateID(kind string) string {
	return kind + "-" + uuid.New().String()
}
