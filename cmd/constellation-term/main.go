package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/lao-tseu-is-alive/go-particle-network/internal/term"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/lao-tseu-is-alive/go-particle-network/pkg/simulation"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONSTELLATION_CONFIG"), "path to a JSON config file")
	logPath := flag.String("log", "", "write logs to this file (the screen is taken by the animation)")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		loaded, err := simulation.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	fieldCfg, err := cfg.FieldConfig()
	if err != nil {
		log.Fatal(err)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := simulation.NewLogger(cfg.LogLevel, logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	field := particles.NewField(fieldCfg, simulation.NewRandomSource(cfg.Seed))
	host := term.NewHost(screen, field, cfg.Background(), *fps, logger)
	err = host.Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
