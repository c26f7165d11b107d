package search

import (
	"testing"

	"github.com/beka-birhanu/vinom-robot/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(r, c int) maze.CellPosition {
	return maze.CellPosition{Row: r, Col: c}
}

func TestShortestPathReference(t *testing.T) {
	m := maze.Reference8x8()

	path, err := ShortestPath(m, pos(0, 0), pos(7, 7))
	require.NoError(t, err)

	expected := []maze.CellPosition{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4), pos(0, 5), pos(0, 6), pos(0, 7),
		pos(1, 7), pos(2, 7), pos(3, 7), pos(4, 7), pos(5, 7), pos(6, 7), pos(7, 7),
	}
	assert.Equal(t, expected, path)
}

func TestShortestPathEdgeCases(t *testing.T) {
	t.Run("start equals goal", func(t *testing.T) {
		path, err := ShortestPath(maze.Reference8x8(), pos(3, 4), pos(3, 4))
		require.NoError(t, err)
		assert.Equal(t, []maze.CellPosition{pos(3, 4)}, path)
	})

	t.Run("unreachable goal", func(t *testing.T) {
		m, err := maze.NewBordered(3)
		require.NoError(t, err)
		require.NoError(t, m.AddWall(pos(2, 2), maze.North))
		require.NoError(t, m.AddWall(pos(2, 2), maze.West))

		path, err := ShortestPath(m, pos(0, 0), pos(2, 2))
		assert.ErrorIs(t, err, ErrNoPath)
		assert.Nil(t, path)
	})

	t.Run("endpoint out of bounds", func(t *testing.T) {
		_, err := ShortestPath(maze.Reference8x8(), pos(0, 0), pos(8, 0))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = ShortestPath(maze.Reference8x8(), pos(-1, 0), pos(0, 0))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("ties break north east south west", func(t *testing.T) {
		m, err := maze.NewBordered(2)
		require.NoError(t, err)

		path, err := ShortestPath(m, pos(0, 0), pos(1, 1))
		require.NoError(t, err)
		assert.Equal(t, []maze.CellPosition{pos(0, 0), pos(0, 1), pos(1, 1)}, path)
	})
}

func TestShortestPathSerpentine(t *testing.T) {
	m, err := maze.NewBordered(3)
	require.NoError(t, err)
	require.NoError(t, m.AddWall(pos(0, 0), maze.South))
	require.NoError(t, m.AddWall(pos(0, 1), maze.South))
	require.NoError(t, m.AddWall(pos(1, 1), maze.South))
	require.NoError(t, m.AddWall(pos(1, 2), maze.South))

	path, err := ShortestPath(m, pos(0, 0), pos(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []maze.CellPosition{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2), pos(1, 1), pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2),
	}, path)

	d, err := Distance(m, pos(0, 0), pos(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 8, d)
}

func TestShortestPathMatchesAllPairsDistances(t *testing.T) {
	generated, err := maze.Generate(5, 11)
	require.NoError(t, err)

	for name, m := range map[string]*maze.Maze{
		"reference": maze.Reference8x8(),
		"generated": generated,
	} {
		t.Run(name, func(t *testing.T) {
			dist := allPairs(m)
			n := m.Size()
			for a := 0; a < n*n; a++ {
				for b := 0; b < n*n; b++ {
					from, to := pos(a/n, a%n), pos(b/n, b%n)
					path, err := ShortestPath(m, from, to)
					require.NoError(t, err)
					require.Equal(t, dist[a][b], len(path)-1, "%s -> %s", from, to)
					assertContiguous(t, m, path)
				}
			}
		})
	}
}

// allPairs computes Floyd-Warshall distances over open walls.
func allPairs(m *maze.Maze) [][]int {
	n := m.Size()
	cells := n * n
	const inf = 1 << 30

	dist := make([][]int, cells)
	for i := range dist {
		dist[i] = make([]int, cells)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = inf
			}
		}
		for _, mv := range m.Neighbors(pos(i/n, i%n)) {
			dist[i][mv.To.Row*n+mv.To.Col] = 1
		}
	}

	for k := 0; k < cells; k++ {
		for i := 0; i < cells; i++ {
			for j := 0; j < cells; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

func assertContiguous(t *testing.T, m *maze.Maze, path []maze.CellPosition) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		h, err := maze.HeadingBetween(path[i], path[i+1])
		require.NoError(t, err)
		require.False(t, m.HasWall(path[i], h), "path crosses a wall at %s", path[i])
	}
}
