package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IlikeChooros/go-hypercube/pkg/hypercube"
	"github.com/IlikeChooros/go-hypercube/pkg/term"
	"github.com/mattn/go-isatty"
)

// One interactive game, reading positions line by line
type Session struct {
	board       *hypercube.Board
	renderer    *term.Renderer
	in          io.Reader
	interactive bool
}

// Create a session on an empty strict board, marking an occupied cell is
// reported to the player instead of being silently skipped
func NewSession(cache *hypercube.LineCache, width, dimensions int, in io.Reader, renderer *term.Renderer) (*Session, error) {
	board, err := cache.NewBoard(width, dimensions, hypercube.WithStrictOccupancy())
	if err != nil {
		return nil, err
	}

	return &Session{
		board:       board,
		renderer:    renderer,
		in:          in,
		interactive: isTerminal(in),
	}, nil
}

// Prompts are printed only when reading from a terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Session) SetInteractive(interactive bool) {
	s.interactive = interactive
}

func (s *Session) Board() *hypercube.Board {
	return s.board
}

// Play until the game is decided, the input ends or the context is cancelled.
// Returns the outcome at that point.
func (s *Session) Run(ctx context.Context) (hypercube.Outcome, error) {
	// Releases the reader when we return with input left unread
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := s.renderer.Output()
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := s.renderer.Print(s.board); err != nil {
		return s.board.State(), err
	}

	for {
		if s.interactive {
			fmt.Fprintf(out, "%v> ", s.board.Turn())
		}

		var text string
		var ok bool
		select {
		case <-ctx.Done():
			return s.board.State(), ctx.Err()
		case text, ok = <-lines:
		}
		if !ok {
			var err error
			select {
			case err = <-readErr:
			default:
			}
			return s.board.State(), err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == "quit" || text == "q" {
			return s.board.State(), nil
		}

		if err := s.move(text); err != nil {
			if !errors.Is(err, hypercube.ErrInvalidPosition) && !errors.Is(err, hypercube.ErrOccupiedCell) {
				return s.board.State(), err
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		if err := s.renderer.Print(s.board); err != nil {
			return s.board.State(), err
		}
		if state := s.board.State(); state.Terminal() {
			return state, nil
		}
	}
}

func (s *Session) move(text string) error {
	pos, err := ParsePosition(text, s.board.Shape())
	if err != nil {
		return err
	}
	return s.board.Mark(pos)
}
