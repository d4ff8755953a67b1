package world

import (
	"fmt"
	"log"

	"raycaster/internal/config"
)

// LoadWorld loads the tile palette and then the map that uses it.
func LoadWorld(tilesFile, mapFile string) (*Grid, error) {
	tm := NewTileManager()
	if err := tm.LoadTileConfig(tilesFile); err != nil {
		return nil, fmt.Errorf("failed to load tiles: %w", err)
	}
	log.Printf("[TileManager] Loaded %d tile types from %s", len(tm.GetAllTileKeys()), tilesFile)

	grid, err := NewMapLoader(tm).LoadMap(mapFile)
	if err != nil {
		return nil, err
	}
	return grid, nil
}

// LoadWorldFromConfig loads the files named in cfg.World.
func LoadWorldFromConfig(cfg *config.Config) (*Grid, error) {
	return LoadWorld(cfg.World.TilesFile, cfg.World.MapFile)
}
