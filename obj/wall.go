package obj

import (
	"github.com/milk9111/pong/collision"
	"github.com/milk9111/pong/common"
)

// Wall is an invisible, immovable boundary.
type Wall struct {
	base

	width    float64
	height   float64
	wallType WallType
}

func NewWall(pos common.Vec2, width, height float64, wallType WallType) *Wall {
	return &Wall{
		base:     base{pos: pos},
		width:    width,
		height:   height,
		wallType: wallType,
	}
}

func (w *Wall) Type() WallType {
	return w.wallType
}

func (w *Wall) Collider() (collision.Collider, bool) {
	return collision.Collider{Shape: collision.Rect(w.width, w.height), Static: true}, true
}

func (w *Wall) Data() (Data, bool) {
	return w.wallType, true
}
