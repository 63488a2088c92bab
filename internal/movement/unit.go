// Package movement validates unit selection and applies single-hex moves
// against a terrain map and a unit's per-turn movement budget.
package movement

import (
	"fmt"

	"github.com/google/uuid"
)

// Unit is anything that moves across the map with a per-turn budget.
// Two units are the same unit when their IDs are equal.
type Unit interface {
	ID() string
	Movement() int
	MaxMovement() int
	SpendMovement(cost int)
	ResetMovement()
}

// Piece is the stock Unit implementation.
type Piece struct {
	id          string
	Name        string
	movement    int
	maxMovement int
}

// NewUnit creates a piece with a fresh ID and a full budget.
func NewUnit(name string, maxMovement int) *Piece {
	return &Piece{
		id:          uuid.NewString(),
		Name:        name,
		movement:    maxMovement,
		maxMovement: maxMovement,
	}
}

func (p *Piece) ID() string       { return p.id }
func (p *Piece) Movement() int    { return p.movement }
func (p *Piece) MaxMovement() int { return p.maxMovement }

// SpendMovement deducts cost from the remaining budget.
func (p *Piece) SpendMovement(cost int) {
	p.movement -= cost
}

// ResetMovement restores the full budget at the start of a turn.
func (p *Piece) ResetMovement() {
	p.movement = p.maxMovement
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s (%.8s)", p.Name, p.id)
}
