package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/battleship-solver/internal/bench"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var wonLine = regexp.MustCompile(`Game won in round (\d+)\.\n$`)

func TestPlayFixture(t *testing.T) {
	out, err := execute(t, "play", "--fixture", "../../internal/board/testdata/classic.yaml", "--heat")
	require.NoError(t, err)

	m := wonLine.FindStringSubmatch(out)
	require.NotNil(t, m, out)
	rounds, _ := strconv.Atoi(m[1])

	assert.Equal(t, rounds, strings.Count(out, "The biggest heat is "))
	assert.Equal(t, 6, strings.Count(out, "Sinking ship "))
	assert.Contains(t, out, "Sinking ship NINE\n")
	assert.Contains(t, out, "round 1\n")
	assert.Contains(t, out, "0.000 ")
	assert.NotContains(t, out, "\x1b[")
}

func TestPlayQuiet(t *testing.T) {
	out, err := execute(t, "play", "--seed", "5", "--size", "7", "--fleet", "four", "--quiet")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "seed 5, 7x7, fleet four", lines[0])
	for _, line := range lines[2 : len(lines)-2] {
		assert.True(t, strings.HasPrefix(line, "The biggest heat is "), line)
	}
	assert.Equal(t, "Sinking ship FOUR", lines[len(lines)-2])
	assert.Regexp(t, wonLine, out)
}

func TestPlaySameSeedSameGame(t *testing.T) {
	args := []string{"play", "--seed", "11", "--size", "10", "--fleet", "five,three,two", "-q"}
	first, firstErr := execute(t, args...)
	second, secondErr := execute(t, args...)
	assert.Equal(t, first, second)
	assert.Equal(t, firstErr, secondErr)
}

func TestPlayUnresolvable(t *testing.T) {
	out, err := execute(t, "play", "--fixture", "../../internal/solver/testdata/crossed.yaml", "-q")
	assert.ErrorIs(t, err, errGameLost)
	assert.True(t, strings.HasSuffix(out, "Unresolvable hit cluster.\n"), out)
}

func TestPlayErrors(t *testing.T) {
	tests := map[string][]string{
		"size":    {"play", "--size", "3"},
		"fleet":   {"play", "--fleet", "six"},
		"fixture": {"play", "--fixture", "does-not-exist.yaml"},
		"fit":     {"play", "--size", "5", "--fleet", "five,five,five,five"},
		"both":    {"play", "--seed", "1", "--fixture", "x.yaml"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errGameLost)
		})
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "-n", "8", "-w", "2", "--size", "8", "--fleet", "three", "--json")
	require.NoError(t, err)

	var summary bench.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 8, summary.Games)
	assert.Equal(t, 8, summary.Won)
	assert.Positive(t, summary.MinRounds)

	out, err = execute(t, "bench", "-n", "3", "--size", "8", "--fleet", "three")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "games: 3, won: 3,"), out)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.log")
	_, err := execute(t, "--log-file", path, "play", "--seed", "2", "--size", "6", "--fleet", "two", "-q")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"target selected"`)

	// later commands must not keep writing to the file
	_, err = execute(t, "play", "--seed", "2", "--size", "6", "--fleet", "two", "-q")
	require.NoError(t, err)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b, after)
}
