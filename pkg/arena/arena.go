package arena

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/IlikeChooros/go-hypercube/pkg/hypercube"
)

/*
Random playout arena, plays a series of games between two uniformly random
movers on a hypercube board. Workers build their boards from one shared
LineCache, so the lines are enumerated once for the whole run.
*/

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

type Config struct {
	Width      int
	Dimensions int
	Games      int
	Workers    int
	Seed       int64 // 0 picks a seed with SeedGeneratorFn
}

func DefaultConfig() Config {
	return Config{
		Width:      3,
		Dimensions: 2,
		Games:      1000,
		Workers:    2,
	}
}

// Arena keeps no per-run state, Run may be called again or concurrently
type Arena struct {
	cache    *hypercube.LineCache
	config   Config
	listener Listener
}

func New(cache *hypercube.LineCache, config Config) *Arena {
	if cache == nil {
		cache = hypercube.NewLineCache(nil)
	}
	return &Arena{
		cache:    cache,
		config:   config,
		listener: NopListener{},
	}
}

func (a *Arena) WithListener(listener Listener) *Arena {
	if listener != nil {
		a.listener = listener
	}
	return a
}

func (a *Arena) Config() Config {
	return a.config
}

// Play all of the games, blocks until they are done or the context is
// cancelled. A cancelled run returns the summary of the finished games
// together with the context's error.
func (a *Arena) Run(ctx context.Context) (Summary, error) {
	cfg := a.config
	if cfg.Games < 0 {
		return Summary{}, fmt.Errorf("arena: negative number of games %d", cfg.Games)
	}
	cfg.Workers = max(cfg.Workers, 1)
	stats := &ArenaStats{}
	if cfg.Seed == 0 {
		cfg.Seed = SeedGeneratorFn()
	}

	lines, err := a.cache.Lines(cfg.Width, cfg.Dimensions)
	if err != nil {
		return Summary{}, fmt.Errorf("arena: %w", err)
	}

	// Equally distributed work between the workers
	nGames := cfg.Games / cfg.Workers
	rest := cfg.Games % cfg.Workers
	errs := make([]error, cfg.Workers)

	var wg sync.WaitGroup
	for i := range cfg.Workers {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		wg.Add(1)
		go func(id, games int) {
			defer wg.Done()
			errs[id] = a.worker(ctx, id, games, lines, stats, rand.New(rand.NewSource(cfg.Seed+int64(id))))
		}(i, nGames+delta)
	}
	wg.Wait()

	summary := Summary{
		Shape:      lines.Shape().String(),
		Lines:      lines.Len(),
		TotalGames: stats.Total(),
		AWins:      stats.AWins(),
		BWins:      stats.BWins(),
		Draws:      stats.Draws(),
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
	}
	if summary.TotalGames > 0 {
		summary.AverageMoves = float64(stats.Moves()) / float64(summary.TotalGames)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, errors.Join(errs...)
}

func (a *Arena) worker(ctx context.Context, id, nGames int, lines *hypercube.LineSet, stats *ArenaStats, r *rand.Rand) error {
	finished := 0
	defer func() {
		a.listener.OnFinishedWork(id, finished)
	}()

	for i := range nGames {
		board, err := hypercube.NewBoardFromLines(lines, hypercube.WithStrictOccupancy())
		if err != nil {
			return err
		}
		record, err := playGame(ctx, board, r)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("worker %d game %d: %w", id, i, err)
		}

		record.WorkerID = id
		record.Game = i
		stats.add(record.Outcome, len(record.Moves))
		a.listener.OnFinishedGame(record)
		finished++
	}
	return nil
}

// Play random moves until the game is decided, checking the board
// invariants after every move
func playGame(ctx context.Context, board *hypercube.Board, r *rand.Rand) (GameRecord, error) {
	moves := make([]int, 0, board.Shape().Cells())
	outcome := board.State()

	for !outcome.Terminal() {
		select {
		case <-ctx.Done():
			return GameRecord{}, ctx.Err()
		default:
			// continue
		}

		free := board.EmptyCells()
		if len(free) == 0 {
			return GameRecord{}, fmt.Errorf("no empty cells left in a game that is %v", outcome)
		}

		mover := board.Turn()
		move := free[r.Intn(len(free))]
		if err := board.MarkIndex(move); err != nil {
			return GameRecord{}, err
		}
		moves = append(moves, move)

		if err := checkInvariants(board, mover, move); err != nil {
			return GameRecord{}, err
		}
		outcome = board.State()
	}

	line, _ := board.WinningLine()
	return GameRecord{Outcome: outcome, Moves: moves, Line: line}, nil
}

func checkInvariants(board *hypercube.Board, mover hypercube.Player, move int) error {
	pos := board.Shape().Decode(move)
	if p, _ := board.OccupantAt(pos); p != mover {
		return fmt.Errorf("cell %v owned by %v after %v marked it", pos, p, mover)
	}
	if board.Turn() != mover.Opponent() {
		return fmt.Errorf("turn did not pass from %v", mover)
	}
	a, b := board.Mask(hypercube.PlayerA), board.Mask(hypercube.PlayerB)
	if n := a.IntersectionCardinality(b); n != 0 {
		return fmt.Errorf("player masks share %d cells", n)
	}
	return nil
}
