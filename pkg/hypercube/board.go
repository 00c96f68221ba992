package hypercube

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

const (
	_maskPlayerAIdx = 0
	_maskPlayerBIdx = 1
)

type Option func(*Board)

// Report ErrOccupiedCell from Mark instead of silently ignoring the move
func WithStrictOccupancy() Option {
	return func(b *Board) {
		b.strict = true
	}
}

// Hypercube board, one bitmask per player over width^dimensions cells.
// Not safe for concurrent writers, the line set is shared read-only.
type Board struct {
	lines  *LineSet
	masks  [2]*bitset.BitSet
	turn   Player
	strict bool
}

// Create a board, enumerating the lines for it. Prefer LineCache.NewBoard
// when building many boards of the same shape.
func NewBoard(width, dimensions int, opts ...Option) (*Board, error) {
	shape, err := NewShape(width, dimensions)
	if err != nil {
		return nil, err
	}
	lines, err := EnumerateLines(shape)
	if err != nil {
		return nil, err
	}
	return NewBoardFromLines(lines, opts...)
}

// Create an empty board on top of precomputed lines, the set must come from
// EnumerateLines or a LineCache
func NewBoardFromLines(lines *LineSet, opts ...Option) (*Board, error) {
	if lines == nil || len(lines.masks) == 0 || lines.shape.cells < 1 {
		return nil, fmt.Errorf("%w: board needs a non-empty line set", ErrInvalidConfiguration)
	}

	cells := uint(lines.shape.cells)
	b := &Board{
		lines: lines,
		masks: [2]*bitset.BitSet{bitset.New(cells), bitset.New(cells)},
		turn:  PlayerA,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Make a deep copy of the board, sharing only the immutable line set
func (b *Board) Clone() *Board {
	return &Board{
		lines:  b.lines,
		masks:  [2]*bitset.BitSet{b.masks[0].Clone(), b.masks[1].Clone()},
		turn:   b.turn,
		strict: b.strict,
	}
}

func (b *Board) Shape() Shape {
	return b.lines.shape
}

func (b *Board) Lines() *LineSet {
	return b.lines
}

// Player to move next
func (b *Board) Turn() Player {
	return b.turn
}

// Number of occupied cells
func (b *Board) Moves() int {
	return int(b.masks[_maskPlayerAIdx].Count() + b.masks[_maskPlayerBIdx].Count())
}

// Copy of the player's occupancy mask
func (b *Board) Mask(p Player) *bitset.BitSet {
	if p != PlayerA && p != PlayerB {
		return bitset.New(uint(b.lines.shape.cells))
	}
	return b.masks[p.maskIndex()].Clone()
}

// Put the current player's mark on given position, see MarkIndex
func (b *Board) Mark(pos Position) error {
	index, err := b.lines.shape.Index(pos)
	if err != nil {
		return err
	}
	return b.mark(index)
}

// Put the current player's mark on the cell with given linear index.
// Marking an occupied cell changes nothing, the turn stays with the same
// player; strict boards also return ErrOccupiedCell.
func (b *Board) MarkIndex(index int) error {
	if err := b.lines.shape.ValidIndex(index); err != nil {
		return err
	}
	return b.mark(index)
}

func (b *Board) mark(index int) error {
	bit := uint(index)
	if b.masks[_maskPlayerAIdx].Test(bit) || b.masks[_maskPlayerBIdx].Test(bit) {
		if b.strict {
			return fmt.Errorf("%w: %v", ErrOccupiedCell, b.lines.shape.Decode(index))
		}
		return nil
	}

	b.masks[b.turn.maskIndex()].Set(bit)
	b.turn = b.turn.Opponent()
	return nil
}

// Who occupies the cell at given position
func (b *Board) OccupantAt(pos Position) (Player, error) {
	index, err := b.lines.shape.Index(pos)
	if err != nil {
		return PlayerNone, err
	}
	return b.occupant(index), nil
}

func (b *Board) occupant(index int) Player {
	switch {
	case b.masks[_maskPlayerAIdx].Test(uint(index)):
		return PlayerA
	case b.masks[_maskPlayerBIdx].Test(uint(index)):
		return PlayerB
	default:
		return PlayerNone
	}
}

// Linear indices of the free cells, in increasing order
func (b *Board) EmptyCells() []int {
	occupied := b.masks[_maskPlayerAIdx].Union(b.masks[_maskPlayerBIdx])
	free := make([]int, 0, b.lines.shape.cells-b.Moves())
	for i := range b.lines.shape.cells {
		if !occupied.Test(uint(i)) {
			free = append(free, i)
		}
	}
	return free
}

// Current outcome of the game. A win is checked before a draw, so the move
// that fills the board and completes a line wins.
func (b *Board) State() Outcome {
	if winner, _, ok := b.winner(); ok {
		return OutcomeWon(winner)
	}
	if b.masks[_maskPlayerAIdx].UnionCardinality(b.masks[_maskPlayerBIdx]) == uint(b.lines.shape.cells) {
		return OutcomeDraw()
	}
	return OutcomeInProgress()
}

// Positions of the first completed line
func (b *Board) WinningLine() ([]Position, bool) {
	if _, line, ok := b.winner(); ok {
		return b.lines.Positions(line), true
	}
	return nil, false
}

func (b *Board) winner() (Player, int, bool) {
	for _, p := range [...]Player{PlayerA, PlayerB} {
		if line, ok := b.lines.Completed(b.masks[p.maskIndex()]); ok {
			return p, line, true
		}
	}
	return PlayerNone, -1, false
}
