package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/display"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/simulation"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONSTELLATION_CONFIG"), "path to a JSON config file")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		loaded, err := simulation.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()
	system, err := simulation.NewActorSystem(ctx, simulation.NewLogger(cfg.LogLevel, os.Stdout))
	if err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	game, err := display.NewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
