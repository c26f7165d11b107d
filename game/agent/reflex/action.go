package reflex

import (
	"fmt"

	"github.com/beka-birhanu/vinom-robot/game/sim"
)

// Action is the reflex agent's action vocabulary. Turns are plain turns: the
// robot only moves on a later Forward.
type Action uint8

const (
	Forward Action = iota + 1
	TurnLeft
	TurnRight
	UTurn
)

var _ sim.Action = Forward

// Motion implements sim.Action.
func (a Action) Motion() sim.Motion {
	switch a {
	case Forward:
		return sim.MotionForward
	case TurnLeft:
		return sim.MotionTurnLeft
	case TurnRight:
		return sim.MotionTurnRight
	case UTurn:
		return sim.MotionReverse
	}
	return 0
}

func (a Action) String() string {
	switch a {
	case Forward:
		return "FORWARD"
	case TurnLeft:
		return "TURN_LEFT"
	case TurnRight:
		return "TURN_RIGHT"
	case UTurn:
		return "U_TURN"
	}
	return fmt.Sprintf("reflex.Action(%d)", uint8(a))
}

// relativeMove is a move relative to the robot's heading. The order of the
// constants is the tie-break priority.
type relativeMove uint8

const (
	moveLeft relativeMove = iota
	moveForward
	moveRight
)

func (m relativeMove) action() Action {
	switch m {
	case moveLeft:
		return TurnLeft
	case moveRight:
		return TurnRight
	default:
		return Forward
	}
}
