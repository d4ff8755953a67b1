package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// startMarker is the map letter for the viewer's start tile (open floor).
const startMarker = '+'

var (
	ErrEmptyMap  = errors.New("map contains no rows")
	ErrRaggedMap = errors.New("map rows have inconsistent width")
	ErrTwoStarts = errors.New("map has more than one start marker")
)

// MapLoader handles loading world maps from files
type MapLoader struct {
	tiles *TileManager
}

// NewMapLoader creates a map loader resolving letters through tm.
func NewMapLoader(tm *TileManager) *MapLoader {
	return &MapLoader{tiles: tm}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*Grid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	grid, err := ml.ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapPath, err)
	}
	log.Printf("[MapLoader] Loaded %s: %dx%d tiles, start (%d,%d)", mapPath, grid.Width, grid.Height, grid.StartX, grid.StartY)
	return grid, nil
}

// ParseMap reads one row per line, one letter per tile. Blank lines and
// lines starting with "//" are skipped.
func (ml *MapLoader) ParseMap(r io.Reader) (*Grid, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d tiles, expected %d", ErrRaggedMap, i+1, len(row), width)
		}
	}

	grid := NewGrid(width, len(rows), ml.tiles)
	for y, row := range rows {
		for x, letter := range row {
			if letter == startMarker {
				if grid.StartX >= 0 {
					return nil, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrTwoStarts, grid.StartX, grid.StartY, x, y)
				}
				grid.StartX, grid.StartY = x, y
				continue
			}
			tileType, ok := ml.tiles.GetTileTypeFromLetter(letter)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTile, letter, x, y)
			}
			grid.SetTile(x, y, tileType)
		}
	}
	return grid, nil
}
