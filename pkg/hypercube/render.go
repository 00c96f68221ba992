package hypercube

import (
	"fmt"
	"strings"
)

// Row-major grid of occupants, available for boards of at most 2 dimensions.
// Row r holds the cells with coordinate r on axis 1, column c the ones with
// coordinate c on axis 0, so rows[r][c] is the cell at linear index r*width+c.
func (b *Board) Rows() ([][]Player, error) {
	shape := b.lines.shape
	if shape.dimensions > 2 {
		return nil, fmt.Errorf("%w: %d dimensions", ErrNotRenderable, shape.dimensions)
	}

	nRows := shape.cells / shape.width
	rows := make([][]Player, nRows)
	for r := range rows {
		rows[r] = make([]Player, shape.width)
		for c := range rows[r] {
			rows[r][c] = b.occupant(r*shape.width + c)
		}
	}
	return rows, nil
}

// Grid of X, O and '.', one row per line, or a summary for boards with more
// than 2 dimensions
func (b *Board) String() string {
	rows, err := b.Rows()
	if err != nil {
		return fmt.Sprintf("Board={Shape=%v, Moves=%d, Turn=%v, State=%v}",
			b.lines.shape, b.Moves(), b.turn, b.State())
	}

	builder := strings.Builder{}
	for i, row := range rows {
		if i > 0 {
			builder.WriteByte('\n')
		}
		for _, p := range row {
			builder.WriteString(p.String())
		}
	}
	return builder.String()
}
