package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/collision"
	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/sim"
)

const debugCircleSegments = 24

var (
	staticColor  = color.NRGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xe6}
	dynamicColor = color.NRGBA{R: 0x33, G: 0xff, B: 0x33, A: 0xe6}
)

// DrawColliders outlines every collider in the arena. Walls sit outside
// the field, so only their inner edge shows.
func DrawColliders(screen *ebiten.Image, arena *obj.Arena) {
	if screen == nil || arena == nil {
		return
	}
	arena.Each(func(_ int, a obj.Actor) {
		bounds, col, ok := obj.BoundsOf(a)
		if !ok {
			return
		}
		clr := dynamicColor
		if col.Static {
			clr = staticColor
		}
		switch bounds.Kind {
		case collision.KindRectangle:
			vector.StrokeRect(screen,
				float32(bounds.Left), float32(bounds.Up),
				float32(bounds.Right-bounds.Left), float32(bounds.Down-bounds.Up),
				1, clr, false)
		case collision.KindCircle:
			drawCircle(screen, bounds.Center.CP(), bounds.Radius, clr)
		}
	})
}

// DrawStats prints the frame counters in the top-left corner.
func DrawStats(screen *ebiten.Image, stats sim.Stats) {
	msg := fmt.Sprintf("FPS: %.2f  TPS: %.2f\nFrames: %d  Skipped: %d\nFixed steps: %d  Goals: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		stats.Frames, stats.SkippedFrames,
		stats.FixedSteps, stats.Goals)
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func drawCircle(screen *ebiten.Image, center cp.Vector, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	prev := center.Add(cp.ForAngle(0).Mult(radius))
	for i := 1; i <= debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		next := center.Add(cp.ForAngle(t).Mult(radius))
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), 1, clr, false)
		prev = next
	}
}
