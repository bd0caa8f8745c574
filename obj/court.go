package obj

import (
	"math/rand/v2"

	"github.com/milk9111/pong/common"
)

// CourtSpec is the static geometry of a court.
type CourtSpec struct {
	Width  float64
	Height float64

	BallRadius float64

	PaddleWidth  float64
	PaddleHeight float64
	// PaddleInset is the distance from each side of the field to its
	// paddle's center.
	PaddleInset float64

	ScoreboardY float64
}

// Court is the arena built from a CourtSpec, with direct handles kept for
// the host and for tests.
type Court struct {
	Arena      *Arena
	Left       *Paddle
	Right      *Paddle
	Ball       *Ball
	Scoreboard *Scoreboard
	Walls      []*Wall
}

// NewCourt lays out the classic court: two paddles, a ball at the center,
// a field-sized wall just outside each edge and a scoreboard near the top.
// The arena order is paddles, ball, walls, scoreboard.
func NewCourt(spec CourtSpec, tuning *Tuning, rng *rand.Rand) *Court {
	hw, hh := spec.Width/2, spec.Height/2

	c := &Court{
		Left:  NewPaddle(common.Vec2{X: spec.PaddleInset, Y: hh}, spec.PaddleWidth, spec.PaddleHeight, ControlsWS, tuning),
		Right: NewPaddle(common.Vec2{X: spec.Width - spec.PaddleInset, Y: hh}, spec.PaddleWidth, spec.PaddleHeight, ControlsArrows, tuning),
		Ball:  NewBall(common.Vec2{X: hw, Y: hh}, spec.BallRadius, tuning, rng),
		Walls: []*Wall{
			NewWall(common.Vec2{X: hw, Y: -hh}, spec.Width, spec.Height, WallRegular),
			NewWall(common.Vec2{X: hw, Y: 3 * hh}, spec.Width, spec.Height, WallRegular),
			NewWall(common.Vec2{X: -hw, Y: hh}, spec.Width, spec.Height, WallLeft),
			NewWall(common.Vec2{X: 3 * hw, Y: hh}, spec.Width, spec.Height, WallRight),
		},
		Scoreboard: NewScoreboard(common.Vec2{X: hw, Y: spec.ScoreboardY}),
	}

	actors := []Actor{c.Left, c.Right, c.Ball}
	for _, w := range c.Walls {
		actors = append(actors, w)
	}
	actors = append(actors, c.Scoreboard)
	c.Arena = NewArena(actors...)
	return c
}
