// Package collision holds the collider shapes used by actors and the
// pairwise overlap, separation and push-out helpers between them.
package collision

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
)

// ErrUnknownShape is the panic value for a shape kind outside Kind's range.
var ErrUnknownShape = errors.New("collision: unknown shape kind")

type Kind uint8

const (
	KindRectangle Kind = iota + 1
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Shape is a collider shape relative to its owner's position. Rectangles
// are centered on the owner.
type Shape struct {
	Kind   Kind
	Width  float64
	Height float64
	Radius float64
}

func Rect(width, height float64) Shape {
	return Shape{Kind: KindRectangle, Width: width, Height: height}
}

func Circle(radius float64) Shape {
	return Shape{Kind: KindCircle, Radius: radius}
}

// Bounds is a shape placed in the world. Up is the smaller y.
type Bounds struct {
	Kind Kind

	Up, Down, Left, Right float64

	Center common.Vec2
	Radius float64
}

// BoundsOf places shape at pos. The result is only valid until the owner
// moves again.
func BoundsOf(shape Shape, pos common.Vec2) Bounds {
	switch shape.Kind {
	case KindRectangle:
		bb := cp.NewBBForExtents(pos.CP(), shape.Width/2, shape.Height/2)
		return Bounds{
			Kind:   KindRectangle,
			Up:     bb.B,
			Down:   bb.T,
			Left:   bb.L,
			Right:  bb.R,
			Center: pos,
		}
	case KindCircle:
		return Bounds{Kind: KindCircle, Radius: shape.Radius, Center: pos}
	default:
		panic(ErrUnknownShape)
	}
}

// BB maps rectangle bounds onto a chipmunk box (B is the smaller y).
func (b Bounds) BB() cp.BB {
	return cp.BB{L: b.Left, B: b.Up, R: b.Right, T: b.Down}
}

// Nearest returns the point of the rectangle closest to p.
func (b Bounds) Nearest(p common.Vec2) common.Vec2 {
	v := p.CP()
	return common.VecFromCP(b.BB().ClampVect(&v))
}

type Collider struct {
	Shape  Shape
	Static bool
}

func (c Collider) Bounds(pos common.Vec2) Bounds {
	return BoundsOf(c.Shape, pos)
}
