package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-hypercube/pkg/hypercube"
	"github.com/muesli/termenv"
)

func newBoard(t *testing.T, width, dimensions int, moves ...hypercube.Position) *hypercube.Board {
	t.Helper()
	b, err := hypercube.NewBoard(width, dimensions)
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range moves {
		if err := b.Mark(pos); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestRenderGrid(t *testing.T) {
	b := newBoard(t, 3, 2, hypercube.Position{0, 0}, hypercube.Position{1, 1}, hypercube.Position{2, 0})
	r := NewRenderer(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	expected := "X . X\n. O .\n. . .\n"
	if got := r.Render(b); got != expected {
		t.Errorf("Render() =\n%q\nexpected\n%q", got, expected)
	}
}

func TestRenderLine(t *testing.T) {
	b := newBoard(t, 4, 1, hypercube.Position{3})
	r := NewRenderer(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	if got := r.Render(b); got != ". . . X\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRenderCube(t *testing.T) {
	b := newBoard(t, 3, 3, hypercube.Position{1, 1, 1}, hypercube.Position{0, 2, 1})
	r := NewRenderer(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	got := r.Render(b)
	if !strings.HasPrefix(got, "board is 3-dimensional") {
		t.Fatalf("Unexpected header in %q", got)
	}
	if !strings.Contains(got, "X (1,1,1)\n") || !strings.Contains(got, "O (0,2,1)\n") {
		t.Errorf("Missing occupied cells in %q", got)
	}
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, termenv.WithProfile(termenv.Ascii))

	b := newBoard(t, 3, 2,
		hypercube.Position{0, 0}, hypercube.Position{1, 1},
		hypercube.Position{0, 1}, hypercube.Position{1, 0},
		hypercube.Position{0, 2},
	)
	if err := r.Print(b); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "won by X\n") {
		t.Errorf("Expected the outcome at the end, got %q", buf.String())
	}
}

func TestRenderColors(t *testing.T) {
	b := newBoard(t, 3, 2, hypercube.Position{0, 0})
	r := NewRenderer(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI))

	if got := r.Render(b); !strings.Contains(got, "\x1b[") {
		t.Errorf("Expected ANSI sequences, got %q", got)
	}
}
