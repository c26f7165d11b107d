package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/vinom-robot/game"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), err
}

func TestApp_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vinom-robot version")
}

func TestApp_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, cmd := range []string{"run", "render", "watch", "serve"} {
		assert.Contains(t, out, cmd)
	}
}

func TestApp_RunReference(t *testing.T) {
	tests := []struct {
		agent string
		want  string
	}{
		{"goal", "Terminal: true | Steps: 14 | Final: (7, 7)"},
		{"reflex", "Terminal: true | Steps: 15 | Final: (7, 7)"},
		{"REFLEX", "Terminal: true | Steps: 15 | Final: (7, 7)"},
	}

	for _, tt := range tests {
		t.Run(tt.agent, func(t *testing.T) {
			out, err := execute(t, "run", "--agent", tt.agent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestApp_RunLayoutFile(t *testing.T) {
	for _, path := range []string{"../layouts/reference8x8.yaml", "../layouts/reference8x8.json"} {
		out, err := execute(t, "run", "--layout", path)
		require.NoError(t, err, path)
		assert.Contains(t, out, "Steps: 14", path)
	}
}

func TestApp_RunBudget(t *testing.T) {
	out, err := execute(t, "run", "--max-steps", "5")
	require.NoError(t, err)
	assert.Equal(t, "Terminal: false | Steps: 5 | Final: (0, 5)", strings.TrimSpace(out))
}

func TestApp_RunJSON(t *testing.T) {
	out, err := execute(t, "run", "--json")
	require.NoError(t, err)

	var result game.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Terminal)
	assert.Equal(t, 14, result.Steps)
	assert.Len(t, result.Actions, 14)
	assert.Equal(t, "RIGHT", result.Actions[7])
}

func TestApp_RunRepeat(t *testing.T) {
	out, err := execute(t, "run", "--repeat", "2", "--reset-heading", "restore")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])

	out, err = execute(t, "run", "--repeat", "2", "--json")
	require.NoError(t, err)
	var results []game.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "LEFT", results[1].Actions[0])
}

func TestApp_RunTrace(t *testing.T) {
	out, err := execute(t, "run", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "step 1: FORWARD -> (0, 1) facing East")
	assert.Contains(t, out, "step 8: RIGHT -> (1, 7) facing South")
	assert.Contains(t, out, "Steps: 14")
}

func TestApp_RunGenerated(t *testing.T) {
	first, err := execute(t, "run", "--size", "9", "--seed", "3")
	require.NoError(t, err)
	second, err := execute(t, "run", "--size", "9", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Terminal: true")
}

func TestApp_RunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown agent", []string{"run", "--agent", "random"}, "unknown agent kind"},
		{"layout and size", []string{"run", "--layout", "x.yaml", "--size", "4"}, "mutually exclusive"},
		{"bad reset heading", []string{"run", "--reset-heading", "sideways"}, "sideways"},
		{"bad heading", []string{"run", "--heading", "up"}, "--heading"},
		{"bad repeat", []string{"run", "--repeat", "0"}, "--repeat"},
		{"missing layout", []string{"run", "--layout", "missing.yaml"}, "missing.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestApp_Render(t *testing.T) {
	out, err := execute(t, "render")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+---+"))
	assert.Contains(t, out, " > ")
	assert.Contains(t, out, " G ")

	out, err = execute(t, "render", "--heading", "south")
	require.NoError(t, err)
	assert.Contains(t, out, " v ")
}
