// Command gadzooks-term runs the game in a terminal, drawing two pixels per
// character cell.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"gadzooks/config"
	"gadzooks/game"
	"gadzooks/input"
	"gadzooks/term"
)

func main() {
	configPath := flag.String("config", "", "path to a gadzooks.yaml config file")
	logFile := flag.String("log", "gadzooks-term.log", "log file; the terminal itself is busy drawing")
	flag.Parse()

	shared, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	// terminals are coarse; hide the minimap and render fewer columns unless the
	// config file asks otherwise
	cfg, err := shared.Clone()
	if err != nil {
		log.WithError(err).Fatal("failed to copy config")
	}
	if *configPath == "" {
		cfg.Minimap.Visible = false
		cfg.View.Resolution = cfg.View.Width / 10
	}

	if err := cfg.Log.Apply(); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Fatal("failed to open log file")
	}
	defer f.Close()
	log.SetOutput(f)

	scene, err := game.NewScene(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build scene")
	}

	keys := input.NewKeyTable(cfg.Term.Hold)
	screen, err := term.Open(keys)
	if err != nil {
		log.WithError(err).Fatal("failed to open terminal")
	}
	screen.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = game.Loop(ctx, scene, keys, screen, cfg.Tick())
	stop()
	screen.Close()

	if err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}
