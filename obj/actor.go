package obj

import (
	"image/color"
	"time"

	"github.com/milk9111/pong/collision"
	"github.com/milk9111/pong/common"
)

// Actor is anything that lives on the court. The set of actors is closed:
// Ball, Paddle, Wall and Scoreboard.
type Actor interface {
	Position() common.Vec2
	SetPosition(pos common.Vec2)

	// Update runs once per frame with the real elapsed time.
	Update(info *UpdateInfo)
	// FixedUpdate runs zero or more times per frame with a constant step.
	FixedUpdate(info *UpdateInfo)

	// Draw only fails when the surface does.
	Draw(s Surface) error

	Collider() (collision.Collider, bool)
	Data() (Data, bool)
	SetData(d Data)

	actor()
}

// UpdateInfo is rebuilt by the loop for every Update and FixedUpdate pass.
type UpdateInfo struct {
	Keys    KeySet
	Elapsed time.Duration
	// Seconds is Elapsed as float seconds.
	Seconds float64
	Arena   *Arena
	Events  *EventQueue
}

// Surface is what actors draw on.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, clr color.Color) error
	FillCircle(center common.Vec2, radius float64, clr color.Color) error
	MeasureText(s string) (w, h float64)
	DrawText(s string, x, y float64, clr color.Color) error
}

// base carries the position and the no-op defaults shared by every actor.
type base struct {
	pos common.Vec2
}

func (b *base) Position() common.Vec2 {
	return b.pos
}

func (b *base) SetPosition(pos common.Vec2) {
	b.pos = pos
}

func (b *base) Update(*UpdateInfo) {}

func (b *base) FixedUpdate(*UpdateInfo) {}

func (b *base) Draw(Surface) error {
	return nil
}

func (b *base) Collider() (collision.Collider, bool) {
	return collision.Collider{}, false
}

func (b *base) Data() (Data, bool) {
	return nil, false
}

func (b *base) SetData(Data) {}

func (b *base) actor() {}

// BoundsOf returns the current bounds of a colliding actor.
func BoundsOf(a Actor) (collision.Bounds, collision.Collider, bool) {
	col, ok := a.Collider()
	if !ok {
		return collision.Bounds{}, collision.Collider{}, false
	}
	return col.Bounds(a.Position()), col, true
}
