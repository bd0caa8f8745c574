// Command headless plays a match without a window, stepping a manual clock
// one frame at a time, and logs the result. Input comes from an optional
// key script in prefabs/scripts.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/milk9111/pong/keyscript"
	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/sim"
)

func main() {
	seconds := flag.Float64("seconds", 60, "simulated seconds to run")
	seed := flag.Uint64("seed", 1, "seed for serve directions")
	config := flag.String("config", prefabs.SimSpecFile, "spec file in prefabs/")
	input := flag.String("input", "", "key script in prefabs/scripts, e.g. sweep.tengo (empty for no input)")
	quitAfter := flag.Float64("quit-after", 0, "seconds after which the key script presses escape (0 to let it run)")
	verbose := flag.Bool("v", false, "log every goal")
	flag.Parse()

	spec, err := prefabs.LoadSimSpec(*config)
	if err != nil {
		log.Fatalf("failed to load spec: %v", err)
	}

	script, err := loadInput(*input, *quitAfter)
	if err != nil {
		log.Fatalf("failed to load input: %v", err)
	}

	tuning := spec.Tuning()
	court := obj.NewCourt(spec.Court(), &tuning, rand.New(rand.NewPCG(*seed, *seed+1)))
	cfg := spec.LoopConfig()
	clock := sim.NewManualClock(time.Unix(0, 0))
	loop := sim.NewLoop(cfg, court.Arena, clock)

	total := time.Duration(*seconds * float64(time.Second))
	elapsed := time.Duration(0)
	goals := 0
	for frame := 0; elapsed < total; frame++ {
		clock.Advance(cfg.FrameInterval)
		elapsed += cfg.FrameInterval

		var events []obj.KeyEvent
		if script != nil {
			events, err = script.Events(loop.Keys(), frame, elapsed)
			if err != nil {
				log.Fatalf("input script: %v", err)
			}
		}
		if err := loop.Frame(events); err != nil {
			if errors.Is(err, sim.ErrQuit) {
				log.Printf("%s quit at %.2fs", script.Name(), elapsed.Seconds())
				break
			}
			log.Fatalf("frame failed: %v", err)
		}

		if *verbose && loop.Stats().Goals != goals {
			goals = loop.Stats().Goals
			log.Printf("%.2fs goal, score %s", elapsed.Seconds(), court.Scoreboard.Text())
		}
	}

	stats := loop.Stats()
	ball := court.Ball.Position()
	log.Printf("score %s after %.1fs", court.Scoreboard.Text(), elapsed.Seconds())
	log.Printf("ball at (%.1f, %.1f) moving %.1f px/s", ball.X, ball.Y, court.Ball.Velocity().Length())
	log.Printf("frames %d, skipped %d, fixed steps %d, goals %d", stats.Frames, stats.SkippedFrames, stats.FixedSteps, stats.Goals)
}

// loadInput loads the named key script, seeding state.quit_after when
// quitAfter is positive. An empty name means no scripted input.
func loadInput(name string, quitAfter float64) (*keyscript.Script, error) {
	if name == "" {
		if quitAfter > 0 {
			return nil, errors.New("-quit-after needs an -input script")
		}
		return nil, nil
	}
	script, err := keyscript.Load(name)
	if err != nil {
		return nil, err
	}
	if quitAfter > 0 {
		if err := script.SetState("quit_after", quitAfter); err != nil {
			return nil, err
		}
	}
	return script, nil
}
