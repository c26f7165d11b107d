package maze

import (
	"fmt"
	"strings"
)

// Heading is one of the four cardinal directions a robot can face.
type Heading uint8

// Headings in the fixed expansion order used by neighbor enumeration.
const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{"North", "East", "South", "West"}

// Headings returns the four headings in the order North, East, South, West.
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// IsValid reports whether h is one of the four cardinal headings.
func (h Heading) IsValid() bool {
	return h <= West
}

// Left returns the heading after a quarter turn counter-clockwise.
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Right returns the heading after a quarter turn clockwise.
func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	switch h {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit row/column offset of one step in this heading.
func (h Heading) Delta() CellPosition {
	switch h {
	case North:
		return CellPosition{Row: -1, Col: 0}
	case East:
		return CellPosition{Row: 0, Col: 1}
	case South:
		return CellPosition{Row: 1, Col: 0}
	default:
		return CellPosition{Row: 0, Col: -1}
	}
}

// Wall returns the wall flag that blocks travel in this heading.
func (h Heading) Wall() WallMask {
	switch h {
	case North:
		return WallNorth
	case East:
		return WallEast
	case South:
		return WallSouth
	default:
		return WallWest
	}
}

// Glyph returns an arrow character for ASCII rendering.
func (h Heading) Glyph() rune {
	switch h {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	default:
		return '<'
	}
}

func (h Heading) String() string {
	if !h.IsValid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingNames[h]
}

// ParseHeading accepts a single-letter ("N") or full ("north") heading name.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// HeadingBetween returns the heading of the unit move from one cell to an
// adjacent cell.
func HeadingBetween(from, to CellPosition) (Heading, error) {
	for _, h := range Headings() {
		if from.Step(h) == to {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %s -> %s", ErrNotAdjacent, from, to)
}

// MarshalText implements encoding.TextMarshaler.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, uint8(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heading) UnmarshalText(b []byte) error {
	parsed, err := ParseHeading(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
