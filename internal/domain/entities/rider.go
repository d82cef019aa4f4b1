package entities

// Rider represents a passenger who can request rides. It is a simple value
// object — rider state is just an identity and a current position, which
// moves to the dropoff location when their ride completes (spec.md §4.2).
//
// Go Learning Note — Exported vs Unexported:
// In Go, identifiers starting with an uppercase letter are exported
// (public). There are no keywords like public/private — capitalization IS
// the access modifier.
type Rider struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
}

// NewRider constructs a Rider at the given position.
func NewRider(id string, pos Position) *Rider {
	return &Rider{
		ID:       id,
		Position: pos,
	}
}
