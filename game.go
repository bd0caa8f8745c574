package main

import (
	"errors"
	"log"
	"math/rand/v2"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/render"
	"github.com/milk9111/pong/sim"
)

type Game struct {
	debug bool

	specPath string
	spec     *prefabs.SimSpec
	watcher  *prefabs.SpecWatcher

	width  int
	height int
	tuning *obj.Tuning
	loop   *sim.Loop
	input  *Input
	screen *render.Screen

	paused  bool
	pending []obj.KeyEvent
	pauseUI *ebitenui.UI
}

func NewGame(specPath string, spec *prefabs.SimSpec, debug bool, seed uint64) (*Game, error) {
	tuning := spec.Tuning()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	court := obj.NewCourt(spec.Court(), &tuning, rng)

	face, err := render.LoadScoreFace(spec.Scoreboard.FontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    debug,
		specPath: specPath,
		spec:     spec,
		width:    int(spec.Field.Width),
		height:   int(spec.Field.Height),
		tuning:   &tuning,
		loop:     sim.NewLoop(spec.LoopConfig(), court.Arena, sim.SystemClock),
		input:    NewInput(),
		screen:   render.NewScreen(face),
	}
	g.pauseUI = NewPauseUI(g)
	g.watchSpec()
	return g, nil
}

// watchSpec starts live reload when the spec exists on disk under
// prefabs/.
func (g *Game) watchSpec() {
	if info, err := os.Stat("prefabs"); err != nil || !info.IsDir() {
		return
	}
	w, err := prefabs.WatchSpec("prefabs", g.specPath, prefabs.DefaultQuietPeriod)
	if err != nil {
		log.Printf("failed to watch spec: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("failed to close prefab watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.pollSpec()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		for _, evt := range g.input.Poll() {
			if evt.Key == obj.KeyEscape {
				return ebiten.Termination
			}
			g.pending = append(g.pending, evt)
		}
		return nil
	}

	events := g.input.Poll()
	if len(g.pending) > 0 {
		events = append(g.pending, events...)
		g.pending = g.pending[:0]
	}
	if err := g.loop.Frame(events); err != nil {
		if errors.Is(err, sim.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if !paused {
		g.loop.Rebase()
	}
}

func (g *Game) pollSpec() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case u, ok := <-g.watcher.Updates:
			if !ok {
				g.watcher = nil
				return
			}
			if u.Err != nil {
				log.Printf("spec not reloaded: %v", u.Err)
				continue
			}
			g.applySpec(u.Spec)
		default:
			return
		}
	}
}

// applySpec applies the retunable part of a changed spec. Court geometry
// only takes effect on restart.
func (g *Game) applySpec(spec *prefabs.SimSpec) {
	*g.tuning = spec.Tuning()
	g.loop.SetConfig(spec.LoopConfig())
	if spec.Court() != g.spec.Court() {
		log.Printf("%s: court geometry changed, restart to apply", g.watcher.Path())
	}
	g.spec = spec
	log.Printf("reloaded %s", g.watcher.Path())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target(screen)
	g.loop.Draw(g.screen)

	if g.debug {
		render.DrawColliders(screen, g.loop.Arena())
		render.DrawStats(screen, g.loop.Stats())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
