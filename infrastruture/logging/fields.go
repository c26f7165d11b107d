package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/beka-birhanu/vinom-robot/game/maze"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// EpisodeID adds an episode ID field.
func EpisodeID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("episode_id", id)
	}
}

// Agent adds the agent kind.
func Agent(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("agent", kind)
	}
}

// Step adds the step counter.
func Step(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("step", n)
	}
}

// Position adds row and col fields.
func Position(pos maze.CellPosition) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("row", pos.Row).Int("col", pos.Col)
	}
}

// Heading adds the robot heading.
func Heading(h maze.Heading) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("heading", h.String())
	}
}

// Action adds the name of the action taken.
func Action(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("action", name)
	}
}

// Terminal adds whether the goal was reached.
func Terminal(ok bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("terminal", ok)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
