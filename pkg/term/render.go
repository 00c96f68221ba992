package term

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-hypercube/pkg/hypercube"
	"github.com/muesli/termenv"
)

// ANSI colors of the marks
const (
	colorPlayerA = "1" // red
	colorPlayerB = "4" // blue
	colorEmpty   = "8" // gray
)

// Draws boards on a terminal, colors depend on the output's profile
type Renderer struct {
	out *termenv.Output
}

// Create renderer writing to 'w', pass termenv.WithProfile(termenv.Ascii)
// to disable colors
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) Output() *termenv.Output {
	return r.out
}

func (r *Renderer) styled(p hypercube.Player, winning bool) string {
	style := r.out.String(p.String())
	switch p {
	case hypercube.PlayerA:
		style = style.Foreground(r.out.Color(colorPlayerA))
	case hypercube.PlayerB:
		style = style.Foreground(r.out.Color(colorPlayerB))
	default:
		style = style.Foreground(r.out.Color(colorEmpty))
	}
	if winning {
		style = style.Bold().Underline()
	}
	return style.String()
}

// Render the board as a grid, the winning line is highlighted. Boards with
// more than 2 dimensions are listed cell by cell instead.
func (r *Renderer) Render(b *hypercube.Board) string {
	shape := b.Shape()
	winning := make(map[string]bool)
	if line, ok := b.WinningLine(); ok {
		for _, pos := range line {
			winning[pos.String()] = true
		}
	}

	rows, err := b.Rows()
	if errors.Is(err, hypercube.ErrNotRenderable) {
		return r.renderCells(b, winning)
	}

	builder := strings.Builder{}
	for y, row := range rows {
		for x, p := range row {
			if x > 0 {
				builder.WriteByte(' ')
			}
			pos := hypercube.Position{x}
			if shape.Dimensions() == 2 {
				pos = append(pos, y)
			}
			builder.WriteString(r.styled(p, winning[pos.String()]))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func (r *Renderer) renderCells(b *hypercube.Board, winning map[string]bool) string {
	shape := b.Shape()
	builder := strings.Builder{}
	fmt.Fprintf(&builder, "board is %d-dimensional; showing occupied cells\n", shape.Dimensions())

	for _, pos := range shape.Positions() {
		p, _ := b.OccupantAt(pos)
		if p == hypercube.PlayerNone {
			continue
		}
		fmt.Fprintf(&builder, "%s %v\n", r.styled(p, winning[pos.String()]), pos)
	}
	return builder.String()
}

// Write the rendered board followed by the game's state
func (r *Renderer) Print(b *hypercube.Board) error {
	state := b.State()
	status := fmt.Sprintf("%v to move", b.Turn())
	if state.Terminal() {
		status = r.out.String(state.String()).Bold().String()
	}
	_, err := fmt.Fprintf(r.out, "%s%s\n", r.Render(b), status)
	return err
}
