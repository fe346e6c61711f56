package main

import (
	"os"

	"pong/config"
	"pong/engine"
	"pong/game"
)

func main() {
	cfg := config.Load()
	log := cfg.NewLogger()

	eng, err := engine.New(cfg, log)
	if err != nil {
		log.Error("engine initialization failed", "err", err)
		os.Exit(1)
	}
	defer eng.Shutdown()

	s := game.NewState()
	log.Info("starting", "balls", len(s.Balls))
	eng.Run(s, engine.Clock{})
}
