package solver

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/battleship-solver/internal/board"
	"github.com/vancomm/battleship-solver/internal/fleet"
	"github.com/vancomm/battleship-solver/internal/grid"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

func pt(row, col int) grid.Point {
	return grid.Point{Row: row, Col: col}
}

// oneShip builds an empty size×size board holding a single ship.
func oneShip(t *testing.T, size int, k fleet.Kind, horizontal bool, anchor grid.Point) *board.Grid {
	t.Helper()
	rows := make([][]byte, size)
	for r := range rows {
		rows[r] = []byte(repeat('.', size))
	}
	for _, p := range fleet.Orient(k, horizontal).Place(anchor) {
		rows[p.Row][p.Col] = 'X'
	}
	text := ""
	for _, row := range rows {
		text += string(row) + "\n"
	}
	b, err := board.Parse(text)
	require.NoError(t, err)
	return b
}

func repeat(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}

func TestTwoCellShip(t *testing.T) {
	b := oneShip(t, 12, fleet.Two, true, pt(0, 0))
	g := New(b, fleet.New(fleet.Two))

	status, err := g.Fire(pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, Hit, status)
	assert.Equal(t, Finishing, g.Mode())

	shapes := g.Shapes()
	g.ComputeHeat(shapes)
	for p, h := range g.Heat.All() {
		if h > 0 && p != pt(0, 0) && p != pt(0, 1) && p != pt(1, 0) {
			assert.Greater(t, g.Heat.At(pt(0, 1)), h, "cell %v", p)
		}
	}

	target, _, err := g.SelectTarget()
	require.NoError(t, err)
	assert.Equal(t, pt(0, 1), target)

	status, err = g.Fire(target)
	require.NoError(t, err)
	assert.Equal(t, Hit, status)

	sunk, err := g.DetectSink(shapes)
	require.NoError(t, err)
	require.NotNil(t, sunk)
	assert.Equal(t, fleet.Two, sunk.Kind)
	assert.ElementsMatch(t, []grid.Point{pt(0, 0), pt(0, 1)}, sunk.Cells)

	assert.Equal(t, Sunk, g.Observed.At(pt(0, 0)))
	assert.Equal(t, Sunk, g.Observed.At(pt(0, 1)))
	for _, p := range []grid.Point{pt(0, 2), pt(1, 0), pt(1, 1), pt(1, 2)} {
		assert.Equal(t, Water, g.Observed.At(p), "cell %v", p)
	}
	assert.Equal(t, Unknown, g.Observed.At(pt(2, 0)))
	assert.Equal(t, Searching, g.Mode())
	assert.True(t, g.Over())
}

func TestHeatPrefersOpenHits(t *testing.T) {
	b := oneShip(t, 12, fleet.Two, true, pt(0, 0))
	g := New(b, fleet.New(fleet.Two))
	_, err := g.Fire(pt(0, 0))
	require.NoError(t, err)

	g.ComputeHeat(g.Shapes())
	assert.InDelta(t, 0.012, g.Heat.At(pt(0, 1)), 1e-12)
	assert.InDelta(t, 0.012, g.Heat.At(pt(1, 0)), 1e-12)
	assert.InDelta(t, 0.004, g.Heat.At(pt(5, 5)), 1e-12)
	assert.InDelta(t, 0.002, g.Heat.At(pt(11, 11)), 1e-12)
}

func TestHeatIsRecomputed(t *testing.T) {
	b := oneShip(t, 6, fleet.Three, true, pt(2, 1))
	g := New(b, fleet.New(fleet.Three))

	g.Heat.Fill(100)
	g.Observed.Set(pt(0, 0), Water)
	g.Observed.Set(pt(5, 5), Sunk)
	g.ComputeHeat(g.Shapes())

	for p, h := range g.Heat.All() {
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 1.0, "cell %v", p)
	}
	assert.Zero(t, g.Heat.At(pt(0, 0)))
	assert.Zero(t, g.Heat.At(pt(5, 5)))
}

func TestSelectTarget(t *testing.T) {
	b := board.NewGrid(4)

	t.Run("skips known cells", func(t *testing.T) {
		g := New(b, fleet.New(fleet.Two))
		g.Observed.Set(pt(0, 0), Water)
		g.Heat.Set(pt(0, 0), 5)
		g.Heat.Set(pt(2, 2), 1)
		p, score, err := g.SelectTarget()
		require.NoError(t, err)
		assert.Equal(t, pt(2, 2), p)
		assert.Equal(t, 1.0, score)
	})

	t.Run("first of equals wins", func(t *testing.T) {
		g := New(b, fleet.New(fleet.Two))
		g.Heat.Set(pt(1, 0), 2)
		g.Heat.Set(pt(0, 3), 2)
		g.Heat.Set(pt(3, 3), 2)
		p, _, err := g.SelectTarget()
		require.NoError(t, err)
		assert.Equal(t, pt(0, 3), p)
	})

	t.Run("zero heat is no move", func(t *testing.T) {
		g := New(b, fleet.New(fleet.Two))
		g.Observed.Set(pt(0, 0), Water)
		_, _, err := g.SelectTarget()
		assert.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestFireErrors(t *testing.T) {
	g := New(board.NewGrid(4), fleet.New(fleet.Two))

	_, err := g.Fire(pt(4, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.Fire(pt(0, -1))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	status, err := g.Fire(pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, Water, status)
	assert.Equal(t, Searching, g.Mode())

	_, err = g.Fire(pt(1, 1))
	assert.ErrorIs(t, err, ErrAlreadyShot)
}

func TestDetectSink(t *testing.T) {
	t.Run("waits while a longer ship fits", func(t *testing.T) {
		b := oneShip(t, 8, fleet.Three, true, pt(0, 0))
		g := New(b, fleet.New(fleet.Three, fleet.Two))

		for _, p := range []grid.Point{pt(0, 0), pt(0, 1)} {
			_, err := g.Fire(p)
			require.NoError(t, err)
		}
		sunk, err := g.DetectSink(g.Shapes())
		require.NoError(t, err)
		assert.Nil(t, sunk)
		assert.Len(t, g.Cluster(), 2)

		_, err = g.Fire(pt(0, 2))
		require.NoError(t, err)
		sunk, err = g.DetectSink(g.Shapes())
		require.NoError(t, err)
		require.NotNil(t, sunk)
		assert.Equal(t, fleet.Three, sunk.Kind)
		assert.Equal(t, []fleet.Kind{fleet.Two}, g.Fleet.Kinds())
		assert.Empty(t, g.Cluster())
		for _, p := range []grid.Point{pt(0, 3), pt(1, 0), pt(1, 1), pt(1, 2), pt(1, 3)} {
			assert.Equal(t, Water, g.Observed.At(p), "cell %v", p)
		}
	})

	t.Run("unique but not fully hit", func(t *testing.T) {
		b := oneShip(t, 8, fleet.Three, true, pt(0, 0))
		g := New(b, fleet.New(fleet.Three))

		for _, p := range []grid.Point{pt(0, 0), pt(0, 1)} {
			_, err := g.Fire(p)
			require.NoError(t, err)
		}
		assert.Len(t, g.candidates(g.Shapes()), 1)
		sunk, err := g.DetectSink(g.Shapes())
		require.NoError(t, err)
		assert.Nil(t, sunk)
		assert.Equal(t, Hit, g.Observed.At(pt(0, 0)))
	})

	t.Run("empty cluster", func(t *testing.T) {
		g := New(board.NewGrid(4), fleet.New(fleet.Two))
		sunk, err := g.DetectSink(g.Shapes())
		assert.NoError(t, err)
		assert.Nil(t, sunk)
	})

	t.Run("hits on two ships", func(t *testing.T) {
		b, err := board.Parse(`
			XX......
			........
			........
			......XX
			........
			........
			........
			........
		`)
		require.NoError(t, err)
		g := New(b, fleet.New(fleet.Two, fleet.Two))

		for _, p := range []grid.Point{pt(0, 0), pt(3, 7)} {
			_, err := g.Fire(p)
			require.NoError(t, err)
		}
		_, err = g.DetectSink(g.Shapes())
		assert.ErrorIs(t, err, ErrUnresolvableCluster)
	})
}

func TestCarrierSinks(t *testing.T) {
	for _, horizontal := range []bool{false, true} {
		b := oneShip(t, 10, fleet.Nine, horizontal, pt(2, 3))
		g := New(b, fleet.New(fleet.Nine))

		shapes := g.Shapes()
		cells := fleet.Orient(fleet.Nine, horizontal).Place(pt(2, 3))
		var sunk *Sinking
		for i, p := range cells {
			_, err := g.Fire(p)
			require.NoError(t, err)
			sunk, err = g.DetectSink(shapes)
			require.NoError(t, err)
			if i < len(cells)-1 {
				assert.Nil(t, sunk, "after %d hits", i+1)
			}
		}
		require.NotNil(t, sunk)
		assert.Equal(t, fleet.Nine, sunk.Kind)
		assert.ElementsMatch(t, cells, sunk.Cells)
	}
}

func TestSymmetricDedupeOption(t *testing.T) {
	b := oneShip(t, 12, fleet.Nine, true, pt(4, 4))
	a := New(b, fleet.Default())
	c := New(b, fleet.Default(), WithSymmetricDedupe(false))

	assert.Len(t, a.Shapes(), 10)
	assert.Len(t, c.Shapes(), 10)

	a.ComputeHeat(a.Shapes())
	c.ComputeHeat(c.Shapes())
	assert.Equal(t, a.Heat.Cells, c.Heat.Cells)
}
