package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"gadzooks/config"
	"gadzooks/game"
)

func main() {
	configPath := flag.String("config", "", "path to a gadzooks.yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if err := cfg.Log.Apply(); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}

	scene, err := game.NewScene(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build scene")
	}

	g, err := NewGame(cfg, scene)
	if err != nil {
		log.WithError(err).Fatal("failed to create window")
	}
	g.Run()
}
