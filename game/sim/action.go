package sim

import "fmt"

// Motion is a primitive change the simulator knows how to apply.
type Motion uint8

const (
	MotionForward      Motion = iota + 1 // Advance one cell if unblocked.
	MotionTurnLeft                       // Quarter turn left, no movement.
	MotionTurnRight                      // Quarter turn right, no movement.
	MotionReverse                        // Face the opposite heading, no movement.
	MotionLeftAdvance                    // Turn left, then advance in the same step.
	MotionRightAdvance                   // Turn right, then advance in the same step.
)

var motionNames = map[Motion]string{
	MotionForward:      "forward",
	MotionTurnLeft:     "turn-left",
	MotionTurnRight:    "turn-right",
	MotionReverse:      "reverse",
	MotionLeftAdvance:  "left-advance",
	MotionRightAdvance: "right-advance",
}

// IsValid reports whether m is a known motion.
func (m Motion) IsValid() bool {
	_, ok := motionNames[m]
	return ok
}

func (m Motion) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Motion(%d)", uint8(m))
}

// Action is what an agent hands to Simulator.Step. Each agent defines its own
// closed action set and maps every member to one primitive motion.
type Action interface {
	Motion() Motion
	String() string
}
