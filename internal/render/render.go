// Package render prints the solver's view of the game as text.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/battleship-solver/internal/grid"
	"github.com/vancomm/battleship-solver/internal/solver"
)

type Renderer struct {
	w      io.Writer
	color  bool
	status map[solver.Status]lipgloss.Style
	hot    lipgloss.Style
	cold   lipgloss.Style
}

// New writes to w. Colours are only emitted when color is set and w is a
// terminal that supports them.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:     w,
		color: color,
		status: map[solver.Status]lipgloss.Style{
			solver.Unknown: lr.NewStyle().Foreground(lipgloss.Color("#8a8f98")),
			solver.Water:   lr.NewStyle().Foreground(lipgloss.Color("#2196F3")),
			solver.Hit:     lr.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true),
			solver.Sunk:    lr.NewStyle().Foreground(lipgloss.Color("#e53935")),
		},
		hot:  lr.NewStyle().Foreground(lipgloss.Color("#e57373")).Bold(true),
		cold: lr.NewStyle().Faint(true),
	}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Observed prints one character per cell followed by an empty line.
func (r *Renderer) Observed(g *grid.Grid[solver.Status]) error {
	for row := range g.Size {
		line := ""
		for col := range g.Size {
			s := g.At(grid.Point{Row: row, Col: col})
			line += r.paint(r.status[s], s.String()) + " "
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// Heat prints every score with three decimals. The hottest cells stand
// out when colours are on.
func (r *Renderer) Heat(h *grid.Grid[float64]) error {
	var hottest float64
	for _, v := range h.All() {
		if v > hottest {
			hottest = v
		}
	}
	for row := range h.Size {
		line := ""
		for col := range h.Size {
			v := h.At(grid.Point{Row: row, Col: col})
			text := fmt.Sprintf("%.3f", v)
			switch {
			case hottest > 0 && v == hottest:
				text = r.paint(r.hot, text)
			case v == 0:
				text = r.paint(r.cold, text)
			}
			line += text + " "
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

func (r *Renderer) RoundHeader(number int) error {
	_, err := fmt.Fprintf(r.w, "round %d\n", number)
	return err
}

// Shot prints the selected cell and its score, then the sunk ship if the
// shot finished one.
func (r *Renderer) Shot(round solver.Round) error {
	_, err := fmt.Fprintf(r.w, "The biggest heat is %s, row:%d, col:%d\n",
		strconv.FormatFloat(round.Score, 'g', -1, 64), round.Shot.Row, round.Shot.Col,
	)
	if err != nil {
		return err
	}
	if round.Sunk != nil {
		_, err = fmt.Fprintf(r.w, "Sinking ship %s\n", round.Sunk.Kind)
	}
	return err
}

// Outcome prints the final line of a game.
func (r *Renderer) Outcome(result solver.Result, err error) error {
	var line string
	switch {
	case err == nil && result.Won:
		line = fmt.Sprintf("Game won in round %d.", result.Rounds)
	case errors.Is(err, solver.ErrNoMoves):
		line = "No more moves."
	case errors.Is(err, solver.ErrUnresolvableCluster):
		line = "Unresolvable hit cluster."
	default:
		line = fmt.Sprintf("Game stopped in round %d: %v", result.Rounds, err)
	}
	_, werr := fmt.Fprintln(r.w, line)
	return werr
}
