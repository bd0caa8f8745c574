package obj

import (
	"image/color"

	"github.com/milk9111/pong/collision"
	"github.com/milk9111/pong/common"
)

// Paddle is a player-controlled bar that only moves vertically.
type Paddle struct {
	base

	width    float64
	height   float64
	controls Controls
	tuning   *Tuning
}

func NewPaddle(pos common.Vec2, width, height float64, controls Controls, tuning *Tuning) *Paddle {
	return &Paddle{
		base:     base{pos: pos},
		width:    width,
		height:   height,
		controls: controls,
		tuning:   tuning,
	}
}

func (p *Paddle) Controls() Controls {
	return p.controls
}

func (p *Paddle) Collider() (collision.Collider, bool) {
	return collision.Collider{Shape: collision.Rect(p.width, p.height)}, true
}

// Update moves the paddle with its keys, then pushes it back out of any
// static geometry along y. Other moving actors never block it.
func (p *Paddle) Update(info *UpdateInfo) {
	step := p.tuning.PaddleSpeed * info.Seconds
	moved := false
	if info.Keys.Held(p.controls.Up) {
		p.pos.Y -= step
		moved = true
	}
	if info.Keys.Held(p.controls.Down) {
		p.pos.Y += step
		moved = true
	}
	if moved {
		p.resolveStatic(info.Arena)
	}
}

func (p *Paddle) resolveStatic(a *Arena) {
	col, _ := p.Collider()
	a.Each(func(_ int, other Actor) {
		if other == Actor(p) {
			return
		}
		theirs, oc, ok := BoundsOf(other)
		if !ok || !oc.Static {
			return
		}
		mine := col.Bounds(p.pos)
		if !collision.Collides(mine, theirs) {
			return
		}
		// Out through the face on the paddle's side of the wall, by the
		// full overlap, however deep a long frame carried it.
		if p.pos.Y < theirs.Center.Y {
			p.pos.Y += theirs.Up - mine.Down
		} else {
			p.pos.Y += theirs.Down - mine.Up
		}
	})
}

func (p *Paddle) Draw(s Surface) error {
	return s.FillRect(p.pos.X-p.width/2, p.pos.Y-p.height/2, p.width, p.height, color.White)
}
