package obj

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/milk9111/pong/collision"
	"github.com/milk9111/pong/common"
)

// Tuning holds the speeds that may be retuned while the game runs. Actors
// keep a pointer to it so a config reload reaches them.
type Tuning struct {
	BallSpeed    float64
	PaddleSpeed  float64
	BounceFactor float64
}

type Ball struct {
	base

	velocity common.Vec2
	radius   float64
	spawn    common.Vec2

	tuning *Tuning
	rng    *rand.Rand
}

// NewBall places a ball at pos heading in a random direction at the tuned
// initial speed. pos is also where the ball respawns after a goal.
func NewBall(pos common.Vec2, radius float64, tuning *Tuning, rng *rand.Rand) *Ball {
	b := &Ball{
		base:   base{pos: pos},
		radius: radius,
		spawn:  pos,
		tuning: tuning,
		rng:    rng,
	}
	b.velocity = b.serve()
	return b
}

func (b *Ball) Velocity() common.Vec2 {
	return b.velocity
}

func (b *Ball) SetVelocity(v common.Vec2) {
	b.velocity = v
}

func (b *Ball) Radius() float64 {
	return b.radius
}

func (b *Ball) Spawn() common.Vec2 {
	return b.spawn
}

func (b *Ball) Collider() (collision.Collider, bool) {
	return collision.Collider{Shape: collision.Circle(b.radius)}, true
}

// FixedUpdate moves the ball one step and resolves its contacts in arena
// order. Each bounce moves the ball before the next actor is checked, so
// the outcome depends on that order. Reaching a goal line respawns the
// ball, posts a ScoreEvent and ends the step.
func (b *Ball) FixedUpdate(info *UpdateInfo) {
	b.pos.AddAssign(b.velocity.Scale(info.Seconds))

	col, _ := b.Collider()
	mine := col.Bounds(b.pos)

	for i := 0; i < info.Arena.Len(); i++ {
		scored := false
		info.Arena.TryRead(i, func(other Actor) {
			if other == Actor(b) {
				return
			}
			theirs, _, ok := BoundsOf(other)
			if !ok {
				return
			}
			sep := collision.Separation(mine, theirs)
			if sep >= 0 {
				return
			}
			if side, ok := goalSide(other); ok {
				b.respawn()
				info.Events.Push(ScoreEvent{Side: side})
				scored = true
				return
			}
			b.bounce(collision.SeparationVec(mine, theirs), sep)
			mine = col.Bounds(b.pos)
		})
		if scored {
			return
		}
	}
}

// bounce reflects the velocity on the dominant axis of sepVec, speeds the
// ball up and moves it back out by the penetration depth.
func (b *Ball) bounce(sepVec common.Vec2, sep float64) {
	if math.Abs(sepVec.X) > math.Abs(sepVec.Y) {
		b.velocity.X = -b.velocity.X
	} else {
		b.velocity.Y = -b.velocity.Y
	}
	b.velocity.ScaleAssign(b.tuning.BounceFactor)

	speed := b.velocity.Length()
	if speed == 0 {
		return
	}
	b.pos.AddAssign(b.velocity.Scale(-sep / speed))
}

func (b *Ball) respawn() {
	b.pos = b.spawn
	b.velocity = b.serve()
}

func (b *Ball) serve() common.Vec2 {
	return common.UnitCircle(b.rng).Scale(b.tuning.BallSpeed)
}

func (b *Ball) Draw(s Surface) error {
	return s.FillCircle(b.pos, b.radius, color.White)
}

func goalSide(a Actor) (Side, bool) {
	d, ok := a.Data()
	if !ok {
		return 0, false
	}
	wt, ok := d.(WallType)
	if !ok {
		return 0, false
	}
	return wt.Scores()
}
