// Package episodeapi exposes episode runs, the leaderboard and maze layouts over HTTP.
package episodeapi

import (
	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/game/maze"
)

// MazeResponse describes a maze layout.
type MazeResponse struct {
	Size    int               `json:"size"`
	Walls   [][]int           `json:"walls"`
	ASCII   string            `json:"ascii"`
	Start   maze.CellPosition `json:"start"`
	Goal    maze.CellPosition `json:"goal"`
	Heading maze.Heading      `json:"heading"`
}

func newMazeResponse(setup game.Setup) MazeResponse {
	grid := setup.Maze.Grid()
	walls := make([][]int, len(grid))
	for r, row := range grid {
		walls[r] = make([]int, len(row))
		for c, mask := range row {
			walls[r][c] = int(mask)
		}
	}
	return MazeResponse{
		Size:    setup.Maze.Size(),
		Walls:   walls,
		ASCII:   setup.Maze.RenderWithRobot(setup.Start, setup.Heading, setup.Goal),
		Start:   setup.Start,
		Goal:    setup.Goal,
		Heading: setup.Heading,
	}
}

// LeaderboardResponse lists the best runs for one maze and agent.
type LeaderboardResponse struct {
	Maze      string          `json:"maze"`
	Agent     string          `json:"agent"`
	Standings []game.Standing `json:"standings"`
}
