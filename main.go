package main

import (
	"errors"
	"flag"
	"log"

	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	tilesPath := flag.String("tiles", "", "tile palette file (overrides config)")
	mapPath := flag.String("map", "", "map file (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *tilesPath != "" {
		cfg.World.TilesFile = *tilesPath
	}
	if *mapPath != "" {
		cfg.World.MapFile = *mapPath
	}

	grid, err := world.LoadWorldFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	g, err := game.NewGame(cfg, grid)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetWindowSize())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
