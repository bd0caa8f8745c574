package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders and loop stats")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	config := flag.String("config", prefabs.SimSpecFile, "spec file in prefabs/ (disk copy wins over the embedded one)")
	seed := flag.Uint64("seed", 0, "seed for serve directions (0 picks one from the clock)")
	flag.Parse()

	spec, err := prefabs.LoadSimSpec(*config)
	if err != nil {
		log.Fatalf("failed to load spec: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(int(spec.Field.Width), int(spec.Field.Height))
	ebiten.SetWindowTitle("Pong")
	// The loop paces itself; let ebiten call Update as often as it draws.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	game, err := NewGame(*config, spec, *debug, *seed)
	if err != nil {
		log.Fatalf("failed to load score font: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
