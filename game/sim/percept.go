package sim

import "github.com/beka-birhanu/vinom-robot/game/maze"

// Pose is the robot's cell and heading.
type Pose struct {
	Position maze.CellPosition `json:"position" bson:"position"`
	Heading  maze.Heading      `json:"heading" bson:"heading"`
}

// Percept is the snapshot an agent sees each step: walls relative to the
// current heading plus the pose itself. It is recomputed on every call and
// never stored by the simulator.
type Percept struct {
	FrontBlocked bool              `json:"front_blocked"`
	LeftBlocked  bool              `json:"left_blocked"`
	RightBlocked bool              `json:"right_blocked"`
	Position     maze.CellPosition `json:"position"`
	Heading      maze.Heading      `json:"heading"`
}

// Pose returns the position and heading carried by the percept.
func (p Percept) Pose() Pose {
	return Pose{Position: p.Position, Heading: p.Heading}
}
