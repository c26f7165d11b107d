package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/vinom-robot/game/maze"
)

// Record is a stored episode.
type Record struct {
	ID           uuid.UUID         `json:"id" bson:"_id"`
	OperatorID   uuid.UUID         `json:"operator_id" bson:"operatorID"`
	Agent        AgentKind         `json:"agent" bson:"agent"`
	MazeKey      string            `json:"maze" bson:"mazeKey"`
	Size         int               `json:"size" bson:"size"`
	Start        maze.CellPosition `json:"start" bson:"start"`
	Goal         maze.CellPosition `json:"goal" bson:"goal"`
	StartHeading maze.Heading      `json:"start_heading" bson:"startHeading"`
	Result       Result            `json:"result" bson:"result"`
	CreatedAt    time.Time         `json:"created_at" bson:"createdAt"`
}

// Standing is one leaderboard row. Fewer steps rank higher.
type Standing struct {
	Rank      int    `json:"rank"`
	EpisodeID string `json:"episode_id"`
	Steps     int    `json:"steps"`
}
