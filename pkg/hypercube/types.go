package hypercube

import "fmt"

type Player uint8
type OutcomeKind uint8

// Enum for the cell occupants, PlayerA always moves first
const (
	PlayerNone Player = iota
	PlayerA
	PlayerB
)

const (
	InProgress OutcomeKind = iota
	Won
	Draw
)

// Index of the player's mask in the board's mask array
func (p Player) maskIndex() int {
	return int(p) - 1
}

// Get the other player, PlayerNone has no opponent
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return PlayerNone
	}
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return "."
	}
}

// Outcome of the game, derived from the player masks and the line set.
// Winner is set only when Kind == Won.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
}

func OutcomeInProgress() Outcome {
	return Outcome{Kind: InProgress}
}

func OutcomeWon(winner Player) Outcome {
	return Outcome{Kind: Won, Winner: winner}
}

func OutcomeDraw() Outcome {
	return Outcome{Kind: Draw}
}

// WON and DRAW are terminal
func (o Outcome) Terminal() bool {
	return o.Kind != InProgress
}

func (o Outcome) String() string {
	switch o.Kind {
	case Won:
		return fmt.Sprintf("won by %s", o.Winner)
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

func (k OutcomeKind) String() string {
	switch k {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in-progress"
	}
}
