package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfgPath := flag.String("config", "bogger.ini", "settings file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
		cfg = config.Default()
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(game.Options{
		Config:     cfg,
		ConfigPath: *cfgPath,
		Rand:       rand.New(rand.NewPCG(seed, 0)),
		SpriteSeed: seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.FieldWidth*cfg.Window.Scale, config.FieldHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
