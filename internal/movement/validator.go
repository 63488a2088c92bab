package movement

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/hexfront/internal/pathfind"
	"github.com/talgya/hexfront/internal/world"
)

// State is the selection state of a Validator.
type State uint8

const (
	StateIdle State = iota
	StateAwaitingDestination
	StateDestinationsKnown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingDestination:
		return "AwaitingDestination"
	case StateDestinationsKnown:
		return "DestinationsKnown"
	}
	return "Unknown"
}

// Validator tracks the selected unit and its cached single-hex
// destinations, and is the only thing that mutates occupancy and budgets.
// Callers must serialize calls.
type Validator struct {
	engine *pathfind.Engine

	selected     Unit
	state        State
	destinations []world.HexCoord
	cachedFrom   world.HexCoord
}

// NewValidator creates an idle validator over the engine's map.
func NewValidator(engine *pathfind.Engine) *Validator {
	return &Validator{engine: engine}
}

// Select makes u the active unit and drops any cached destinations.
// Whether u may be selected at all is up to the caller.
func (v *Validator) Select(u Unit) {
	v.selected = u
	v.state = StateAwaitingDestination
	v.destinations = nil
}

// Deselect returns to Idle.
func (v *Validator) Deselect() {
	v.selected = nil
	v.state = StateIdle
	v.destinations = nil
}

// State returns the current selection state.
func (v *Validator) State() State {
	return v.state
}

// Selected returns the active unit, or nil.
func (v *Validator) Selected() Unit {
	return v.selected
}

// ComputeDestinations caches the tiles adjacent to pos the selected unit
// can step onto with its remaining budget.
func (v *Validator) ComputeDestinations(pos world.HexCoord) []world.HexCoord {
	if v.selected == nil {
		return nil
	}
	v.destinations = v.engine.AdjacentDestinations(pos, v.selected.Movement())
	v.cachedFrom = pos
	v.state = StateDestinationsKnown
	return slices.Clone(v.destinations)
}

// destinationsFrom returns the cached destinations, recomputing them if
// the cache is missing or was built for another origin.
func (v *Validator) destinationsFrom(pos world.HexCoord) []world.HexCoord {
	if v.state != StateDestinationsKnown || v.cachedFrom != pos {
		v.ComputeDestinations(pos)
	}
	return v.destinations
}

// AttemptMove moves the selected unit from one tile to an adjacent one.
// All checks run before anything changes: a failed result leaves the map
// and the unit exactly as they were.
func (v *Validator) AttemptMove(from, to world.HexCoord) MoveResult {
	u := v.selected
	if u == nil {
		return moveFailed(ReasonNoUnitSelected)
	}
	m := v.engine.Map()
	fromTile, toTile := m.Get(from), m.Get(to)
	if fromTile == nil || toTile == nil {
		return moveFailed(ReasonInvalidPosition)
	}
	if fromTile.Occupant != u.ID() {
		return moveFailed(ReasonInvalidPosition)
	}
	if toTile.Occupied() {
		return moveFailed(ReasonTileOccupied)
	}
	if u.Movement() <= 0 {
		return moveFailed(ReasonInsufficientMovement)
	}
	if !slices.Contains(v.destinationsFrom(from), to) {
		return moveFailed(ReasonNotAValidDestination)
	}

	cost, err := v.engine.PathCost(from, to)
	if errors.Is(err, pathfind.ErrUnreachable) {
		cost = toTile.MovementCost()
	} else if err != nil {
		return moveFailed(ReasonInvalidPosition)
	}

	fromTile.Occupant = ""
	toTile.Occupant = u.ID()
	u.SpendMovement(cost)

	slog.Debug("unit moved", "unit", u.ID(), "from", from, "to", to, "cost", cost, "remaining", u.Movement())

	if u.Movement() <= 0 {
		v.Deselect()
	} else {
		// The origin changed, so the cache is stale.
		v.destinations = nil
		v.state = StateAwaitingDestination
	}
	return MoveResult{Success: true, Position: to, Cost: cost, Reason: ReasonOK}
}

// HandleDestinationQuery checks a clicked tile against the selected unit's
// destinations without moving anything. The unit's position is found by
// scanning the map for its ID.
func (v *Validator) HandleDestinationQuery(clicked world.HexCoord) ClickResult {
	u := v.selected
	if u == nil {
		return clickRejected(ReasonNoUnitSelected)
	}
	m := v.engine.Map()
	t := m.Get(clicked)
	if t == nil {
		return clickRejected(ReasonInvalidPosition)
	}
	if t.Occupied() {
		return clickRejected(ReasonTileOccupied)
	}
	from, ok := m.Locate(u.ID())
	if !ok {
		return clickRejected(ReasonUnitNotOnMap)
	}
	if !slices.Contains(v.destinationsFrom(from), clicked) {
		r := clickRejected(ReasonNotAValidDestination)
		r.From = from
		return r
	}
	return ClickResult{Accepted: true, From: from, Destination: clicked, Reason: ReasonOK}
}

// ReachableFromSelection returns every tile the selected unit could reach
// this turn over several hops, for highlighting. Moves themselves are
// still single-hex.
func (v *Validator) ReachableFromSelection() mapset.Set[world.HexCoord] {
	if v.selected == nil {
		return mapset.New[world.HexCoord]()
	}
	from, ok := v.engine.Map().Locate(v.selected.ID())
	if !ok {
		return mapset.New[world.HexCoord]()
	}
	return v.engine.Reachable(from, v.selected.Movement())
}
