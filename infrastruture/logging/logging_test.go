package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/stretchr/testify/assert"

	"github.com/beka-birhanu/vinom-robot/game/maze"
)

func testLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(Config{Level: "trace", Format: "json", Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"WARN", bolt.WARN},
		{" error ", bolt.ERROR},
		{"unknown", bolt.INFO},
		{"", bolt.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"episode", EpisodeID("ep-1"), `"episode_id":"ep-1"`},
		{"agent", Agent("goal"), `"agent":"goal"`},
		{"step", Step(14), `"step":14`},
		{"position", Position(maze.CellPosition{Row: 7, Col: 3}), `"col":3`},
		{"heading", Heading(maze.South), `"heading":"South"`},
		{"action", Action("FORWARD"), `"action":"FORWARD"`},
		{"terminal", Terminal(true), `"terminal":true`},
		{"duration", Duration(250 * time.Millisecond), `"duration_ms":250`},
		{"component", Component("cli"), `"component":"cli"`},
		{"str", Str("maze", "reference"), `"maze":"reference"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := testLogger()
			tt.field(logger.Info()).Msg("test")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestErrorField(t *testing.T) {
	logger, buf := testLogger()
	NewEvent(logger.Error()).Add(ErrorField(errors.New("boom"))).Msg("failed")
	assert.Contains(t, buf.String(), "boom")

	logger, buf = testLogger()
	NewEvent(logger.Info()).Add(ErrorField(nil), Step(1)).Msg("ok")
	assert.Contains(t, buf.String(), `"step":1`)
}

func TestLevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: "warn", Format: "json", Output: buf})

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
