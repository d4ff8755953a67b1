package world

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"

	"raycaster/internal/config"
	"raycaster/internal/palette"

	"gopkg.in/yaml.v3"
)

// TileType identifies a tile kind. TileEmpty is always open floor; the rest
// are assigned from tiles.yaml in key order, starting at 1.
type TileType int

const TileEmpty TileType = 0

var (
	ErrUnknownTile   = errors.New("unknown tile")
	ErrDuplicateTile = errors.New("duplicate tile letter")
)

// defaultWallColor is used for solid tiles that name no color.
var defaultWallColor = color.RGBA{R: 101, G: 67, B: 33, A: 255}

// tileInfo is a resolved tiles.yaml entry.
type tileInfo struct {
	key   string
	data  config.TileData
	color color.RGBA
}

// TileManager maps map letters to tile types and tile types to wall properties
type TileManager struct {
	tiles        map[TileType]*tileInfo
	keyToType    map[string]TileType
	letterToType map[rune]TileType
}

// NewTileManager creates a tile manager that knows only the empty tile ('.').
func NewTileManager() *TileManager {
	tm := &TileManager{}
	tm.reset()
	return tm
}

func (tm *TileManager) reset() {
	tm.tiles = map[TileType]*tileInfo{
		TileEmpty: {key: "empty", data: config.TileData{Name: "Empty", Letter: "."}},
	}
	tm.keyToType = map[string]TileType{"empty": TileEmpty}
	tm.letterToType = map[rune]TileType{'.': TileEmpty, ' ': TileEmpty}
}

// LoadTileConfig loads tile configuration from a YAML file
func (tm *TileManager) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}
	return tm.ParseTileConfig(data)
}

// ParseTileConfig replaces the tile set with the tiles described by data.
func (tm *TileManager) ParseTileConfig(data []byte) error {
	var tileConfig config.TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	tm.reset()

	// Sorted keys keep type numbering stable between runs.
	keys := make([]string, 0, len(tileConfig.TileData))
	for key := range tileConfig.TileData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	next := TileEmpty + 1
	for _, key := range keys {
		data := tileConfig.TileData[key]
		letters := []rune(data.Letter)
		if len(letters) != 1 {
			return fmt.Errorf("tile %q: letter must be a single character, got %q", key, data.Letter)
		}
		if _, taken := tm.letterToType[letters[0]]; taken {
			return fmt.Errorf("tile %q: %w %q", key, ErrDuplicateTile, data.Letter)
		}

		info := &tileInfo{key: key, data: data, color: defaultWallColor}
		if data.Color != "" {
			c, err := palette.ParseHex(data.Color)
			if err != nil {
				return fmt.Errorf("tile %q: color: %w", key, err)
			}
			info.color = c
		}

		tm.tiles[next] = info
		tm.keyToType[key] = next
		tm.letterToType[letters[0]] = next
		next++
	}
	return nil
}

// GetTileTypeFromLetter returns the tile type for a map letter
func (tm *TileManager) GetTileTypeFromLetter(letter rune) (TileType, bool) {
	tileType, ok := tm.letterToType[letter]
	return tileType, ok
}

// GetTileTypeFromKey returns the tile type for a tiles.yaml key
func (tm *TileManager) GetTileTypeFromKey(key string) (TileType, bool) {
	tileType, ok := tm.keyToType[key]
	return tileType, ok
}

// GetTileData returns the configuration data for a tile type
func (tm *TileManager) GetTileData(tileType TileType) *config.TileData {
	info, ok := tm.tiles[tileType]
	if !ok {
		return nil
	}
	data := info.data
	return &data
}

// IsSolid returns whether a tile type is a wall
func (tm *TileManager) IsSolid(tileType TileType) bool {
	info, ok := tm.tiles[tileType]
	return ok && info.data.Solid
}

// GetWallColor returns the wall color for a tile type
func (tm *TileManager) GetWallColor(tileType TileType) color.RGBA {
	if info, ok := tm.tiles[tileType]; ok {
		return info.color
	}
	return defaultWallColor
}

// GetAllTileKeys returns all tile keys, sorted
func (tm *TileManager) GetAllTileKeys() []string {
	keys := make([]string, 0, len(tm.keyToType))
	for key := range tm.keyToType {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
