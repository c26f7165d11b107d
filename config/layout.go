package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/beka-birhanu/vinom-robot/game/maze"
)

// Layout errors.
var (
	ErrLayoutNotFound    = errors.New("layout file not found")
	ErrUnsupportedFormat = errors.New("unsupported layout format")
	ErrInvalidLayout     = errors.New("invalid layout")
)

// Format is a layout file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Layout is a maze together with the episode endpoints it was written for.
type Layout struct {
	Maze    *maze.Maze
	Start   maze.CellPosition
	Goal    maze.CellPosition
	Heading maze.Heading
}

// layoutFile is the on-disk shape. Walls and InternalWalls are mutually
// exclusive; with neither the maze is an empty bordered grid.
type layoutFile struct {
	Size          int                `yaml:"size" json:"size"`
	Start         *maze.CellPosition `yaml:"start" json:"start"`
	Goal          *maze.CellPosition `yaml:"goal" json:"goal"`
	Heading       string             `yaml:"heading" json:"heading"`
	Walls         [][]int            `yaml:"walls" json:"walls"`
	InternalWalls []wallSpec         `yaml:"internal_walls" json:"internal_walls"`
}

type wallSpec struct {
	Row  int    `yaml:"row" json:"row"`
	Col  int    `yaml:"col" json:"col"`
	Side string `yaml:"side" json:"side"`
}

// LoadLayoutFile reads a layout from path, picking the format by extension.
func LoadLayoutFile(path string) (*Layout, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, path)
		}
		return nil, fmt.Errorf("failed to access layout file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidLayout, path)
	}

	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	return LoadLayout(f, format)
}

// LoadLayout parses a layout from r.
func LoadLayout(r io.Reader, format Format) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	var lf layoutFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return lf.build()
}

func (lf layoutFile) build() (*Layout, error) {
	size := lf.Size
	if size == 0 {
		size = len(lf.Walls)
	}
	if len(lf.Walls) > 0 && len(lf.InternalWalls) > 0 {
		return nil, fmt.Errorf("%w: walls and internal_walls are mutually exclusive", ErrInvalidLayout)
	}

	var (
		m   *maze.Maze
		err error
	)
	if len(lf.Walls) > 0 {
		m, err = lf.gridMaze(size)
	} else {
		m, err = lf.borderedMaze(size)
	}
	if err != nil {
		return nil, err
	}

	layout := &Layout{
		Maze:    m,
		Goal:    maze.CellPosition{Row: size - 1, Col: size - 1},
		Heading: maze.East,
	}
	if lf.Start != nil {
		layout.Start = *lf.Start
	}
	if lf.Goal != nil {
		layout.Goal = *lf.Goal
	}
	if lf.Heading != "" {
		if layout.Heading, err = maze.ParseHeading(lf.Heading); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	}
	if !m.InBound(layout.Start) || !m.InBound(layout.Goal) {
		return nil, fmt.Errorf("%w: start %s or goal %s outside a %dx%d maze",
			ErrInvalidLayout, layout.Start, layout.Goal, size, size)
	}
	return layout, nil
}

func (lf layoutFile) gridMaze(size int) (*maze.Maze, error) {
	if len(lf.Walls) != size {
		return nil, fmt.Errorf("%w: %d wall rows for size %d", ErrInvalidLayout, len(lf.Walls), size)
	}
	grid := make([][]maze.WallMask, size)
	for r, row := range lf.Walls {
		grid[r] = make([]maze.WallMask, len(row))
		for c, v := range row {
			if v < 0 || v > 15 {
				return nil, fmt.Errorf("%w: wall mask %d at (%d, %d)", ErrInvalidLayout, v, r, c)
			}
			grid[r][c] = maze.WallMask(v)
		}
	}
	m, err := maze.New(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return m, nil
}

func (lf layoutFile) borderedMaze(size int) (*maze.Maze, error) {
	m, err := maze.NewBordered(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	for _, w := range lf.InternalWalls {
		side, err := maze.ParseHeading(w.Side)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
		if err := m.AddWall(maze.CellPosition{Row: w.Row, Col: w.Col}, side); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	}
	return m, nil
}
