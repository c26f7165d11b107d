package goal

import (
	"fmt"

	"github.com/beka-birhanu/vinom-robot/game/sim"
)

// Action is the goal-based agent's action vocabulary. Left and Right are
// macro actions: the simulator turns and advances in the same step.
type Action uint8

const (
	Forward Action = iota + 1
	Left           // turn left, then move forward
	Right          // turn right, then move forward
	UTurn          // face the opposite way, no movement
)

var _ sim.Action = Forward

// Motion implements sim.Action.
func (a Action) Motion() sim.Motion {
	switch a {
	case Forward:
		return sim.MotionForward
	case Left:
		return sim.MotionLeftAdvance
	case Right:
		return sim.MotionRightAdvance
	case UTurn:
		return sim.MotionReverse
	}
	return 0
}

func (a Action) String() string {
	switch a {
	case Forward:
		return "FORWARD"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case UTurn:
		return "U_TURN"
	}
	return fmt.Sprintf("goal.Action(%d)", uint8(a))
}
