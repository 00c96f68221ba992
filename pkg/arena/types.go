package arena

import (
	"fmt"
	"sync/atomic"

	"github.com/IlikeChooros/go-hypercube/pkg/hypercube"
)

type ArenaStats struct {
	aWins uint32
	bWins uint32
	draws uint32
	moves uint64
}

func (as *ArenaStats) Total() int {
	return as.AWins() + as.BWins() + as.Draws()
}

func (as *ArenaStats) AWins() int {
	return int(atomic.LoadUint32(&as.aWins))
}

func (as *ArenaStats) BWins() int {
	return int(atomic.LoadUint32(&as.bWins))
}

func (as *ArenaStats) Draws() int {
	return int(atomic.LoadUint32(&as.draws))
}

func (as *ArenaStats) Moves() int {
	return int(atomic.LoadUint64(&as.moves))
}

func (as *ArenaStats) add(outcome hypercube.Outcome, moves int) {
	switch {
	case outcome.Kind == hypercube.Draw:
		atomic.AddUint32(&as.draws, 1)
	case outcome.Winner == hypercube.PlayerA:
		atomic.AddUint32(&as.aWins, 1)
	default:
		atomic.AddUint32(&as.bWins, 1)
	}
	atomic.AddUint64(&as.moves, uint64(moves))
}

// Single finished game, passed to the listener
type GameRecord struct {
	WorkerID int
	Game     int
	Outcome  hypercube.Outcome
	Moves    []int // linear indices, in play order
	Line     []hypercube.Position
}

type Summary struct {
	Shape        string  `json:"shape"`
	Lines        int     `json:"lines"`
	TotalGames   int     `json:"total_games"`
	AWins        int     `json:"player_a_wins"`
	BWins        int     `json:"player_b_wins"`
	Draws        int     `json:"draws"`
	AverageMoves float64 `json:"average_moves"`
	Workers      int     `json:"workers"`
	Seed         int64   `json:"seed"`
}

func (s Summary) String() string {
	return fmt.Sprintf("board %s (%d lines): games=%d X=%d O=%d draws=%d avg-moves=%.2f workers=%d seed=%d",
		s.Shape, s.Lines, s.TotalGames, s.AWins, s.BWins, s.Draws, s.AverageMoves, s.Workers, s.Seed)
}
