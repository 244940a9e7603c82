package board

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

// Parse reads a literal board: one line per row, 'X' or '#' for a ship cell,
// '.' or '~' for water. Whitespace between cells is ignored.
func Parse(text string) (*Grid, error) {
	var rows [][]Cell
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch ch {
			case 'X', 'x', '#':
				row = append(row, Ship)
			case '.', '~':
				row = append(row, Water)
			default:
				return nil, fmt.Errorf("row %d: unexpected character %q", len(rows), ch)
			}
		}
		rows = append(rows, row)
	}

	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("empty board")
	}
	g := NewGrid(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), size)
		}
		for c, v := range row {
			g.cells.Set(grid.Point{Row: r, Col: c}, v)
		}
	}
	return g, nil
}

// Fixture is a canned board together with the fleet placed on it.
type Fixture struct {
	Fleet []fleet.Kind `yaml:"fleet"`
	Rows  []string     `yaml:"rows"`
	Board *Grid        `yaml:"-"`
}

// LoadFixture reads a YAML fixture file and validates the board against
// its fleet.
func LoadFixture(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixture(b)
}

func ParseFixture(b []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("unable to parse fixture: %w", err)
	}
	if len(fx.Fleet) == 0 {
		return nil, fmt.Errorf("fixture has no fleet")
	}
	g, err := Parse(strings.Join(fx.Rows, "\n"))
	if err != nil {
		return nil, fmt.Errorf("invalid fixture board: %w", err)
	}
	if err := Validate(g, fx.Fleet); err != nil {
		return nil, err
	}
	fx.Board = g
	return &fx, nil
}
