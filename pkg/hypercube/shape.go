package hypercube

import (
	"fmt"
	"strconv"
	"strings"
)

// Position of a cell, one coordinate per axis, each in [0, width)
type Position []int

func (p Position) String() string {
	builder := strings.Builder{}
	builder.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(strconv.Itoa(v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Shape of the hypercube board, width^dimensions cells
type Shape struct {
	width      int
	dimensions int
	cells      int
}

// Create a validated shape, using the DefaultLimits
func NewShape(width, dimensions int) (Shape, error) {
	return NewShapeWithLimits(width, dimensions, DefaultLimits())
}

// Create a validated shape, rejecting boards that exceed given limits
func NewShapeWithLimits(width, dimensions int, limits *Limits) (Shape, error) {
	if width < 1 {
		return Shape{}, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfiguration, width)
	}
	if dimensions < 1 {
		return Shape{}, fmt.Errorf("%w: dimensions must be positive, got %d", ErrInvalidConfiguration, dimensions)
	}
	if limits == nil {
		limits = DefaultLimits()
	}

	cells, ok := checkedPow(width, dimensions, limits.MaxCells)
	if !ok {
		return Shape{}, fmt.Errorf("%w: %d^%d cells exceed the limit of %d",
			ErrInvalidConfiguration, width, dimensions, limits.MaxCells)
	}

	lines, ok := lineCount(width, dimensions, limits.MaxLines)
	if !ok {
		return Shape{}, fmt.Errorf("%w: (%d, %d) has more than %d winning lines",
			ErrInvalidConfiguration, width, dimensions, limits.MaxLines)
	}

	if !limits.InfiniteSize() {
		words := int64(cells+63) / 64
		if size := int64(lines) * words * 8; size > limits.ByteSize {
			return Shape{}, fmt.Errorf("%w: line set of (%d, %d) needs %d bytes, limit is %d",
				ErrInvalidConfiguration, width, dimensions, size, limits.ByteSize)
		}
	}

	return Shape{width: width, dimensions: dimensions, cells: cells}, nil
}

func (s Shape) Width() int {
	return s.width
}

func (s Shape) Dimensions() int {
	return s.dimensions
}

// Number of cells, width^dimensions
func (s Shape) Cells() int {
	return s.cells
}

func (s Shape) String() string {
	return fmt.Sprintf("%d^%d", s.width, s.dimensions)
}

// Check if the position has exactly dimensions coordinates, each in [0, width)
func (s Shape) Validate(pos Position) error {
	if len(pos) != s.dimensions {
		return fmt.Errorf("%w: expected %d coordinates, got %d", ErrInvalidPosition, s.dimensions, len(pos))
	}
	for axis, v := range pos {
		if v < 0 || v >= s.width {
			return fmt.Errorf("%w: coordinate %d on axis %d is outside [0, %d)", ErrInvalidPosition, v, axis, s.width)
		}
	}
	return nil
}

// Linear index of the position, sum of pos[axis] * width^axis
func (s Shape) Index(pos Position) (int, error) {
	if err := s.Validate(pos); err != nil {
		return 0, err
	}
	return s.index(pos), nil
}

// Assumes pos is valid
func (s Shape) index(pos Position) int {
	index := 0
	for axis := len(pos) - 1; axis >= 0; axis-- {
		index = index*s.width + pos[axis]
	}
	return index
}

// Inverse of Index, the index must be in [0, Cells())
func (s Shape) Decode(index int) Position {
	pos := make(Position, s.dimensions)
	for axis := range pos {
		pos[axis] = index % s.width
		index /= s.width
	}
	return pos
}

// Check if the linear index addresses a cell
func (s Shape) ValidIndex(index int) error {
	if index < 0 || index >= s.cells {
		return fmt.Errorf("%w: index %d is outside [0, %d)", ErrInvalidPosition, index, s.cells)
	}
	return nil
}

// All positions of the board, in linear index order
func (s Shape) Positions() []Position {
	positions := make([]Position, s.cells)
	for i := range positions {
		positions[i] = s.Decode(i)
	}
	return positions
}
