package movement

import "github.com/talgya/hexfront/internal/world"

// Reason explains the outcome of a move or destination query.
type Reason uint8

const (
	ReasonOK Reason = iota
	ReasonNoUnitSelected
	ReasonInvalidPosition
	ReasonTileOccupied
	ReasonNotAValidDestination
	ReasonInsufficientMovement
	ReasonUnitNotOnMap
)

var reasonNames = [...]string{
	ReasonOK:                   "OK",
	ReasonNoUnitSelected:       "NoUnitSelected",
	ReasonInvalidPosition:      "InvalidPosition",
	ReasonTileOccupied:         "TileOccupied",
	ReasonNotAValidDestination: "NotAValidDestination",
	ReasonInsufficientMovement: "InsufficientMovement",
	ReasonUnitNotOnMap:         "UnitNotOnMap",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "Unknown"
}

// MoveResult is the outcome of AttemptMove. Position and Cost are only
// meaningful when Success is true.
type MoveResult struct {
	Success  bool           `json:"success"`
	Position world.HexCoord `json:"position"`
	Cost     int            `json:"cost"`
	Reason   Reason         `json:"reason"`
}

func moveFailed(r Reason) MoveResult {
	return MoveResult{Reason: r}
}

// ClickResult is the outcome of HandleDestinationQuery.
type ClickResult struct {
	Accepted    bool           `json:"accepted"`
	From        world.HexCoord `json:"from"`
	Destination world.HexCoord `json:"destination"`
	Reason      Reason         `json:"reason"`
}

func clickRejected(r Reason) ClickResult {
	return ClickResult{Reason: r}
}
