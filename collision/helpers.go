package collision

import (
	"math"

	"github.com/milk9111/pong/common"
)

// Collides reports whether a and b overlap. Touching counts as overlapping.
func Collides(a, b Bounds) bool {
	switch a.Kind {
	case KindCircle:
		switch b.Kind {
		case KindRectangle:
			d := a.Center.Sub(b.Nearest(a.Center))
			return d.LengthSquared() <= a.Radius*a.Radius
		case KindCircle:
			r := a.Radius + b.Radius
			return a.Center.Sub(b.Center).LengthSquared() <= r*r
		}
	case KindRectangle:
		switch b.Kind {
		case KindRectangle:
			return a.BB().Intersects(b.BB())
		case KindCircle:
			return Collides(b, a)
		}
	}
	panic(ErrUnknownShape)
}

// Separation is the signed distance between a and b. A negative value is
// the overlap depth.
func Separation(a, b Bounds) float64 {
	switch a.Kind {
	case KindCircle:
		switch b.Kind {
		case KindRectangle:
			if b.BB().ContainsVect(a.Center.CP()) {
				_, depth, _ := b.nearestEdge(a.Center)
				return -(a.Radius + depth)
			}
			return a.Center.Sub(b.Nearest(a.Center)).Length() - a.Radius
		case KindCircle:
			return a.Center.Sub(b.Center).Length() - a.Radius - b.Radius
		}
	case KindRectangle:
		switch b.Kind {
		case KindRectangle:
			dx := math.Max(b.Left-a.Right, a.Left-b.Right)
			dy := math.Max(b.Up-a.Down, a.Up-b.Down)
			if dx > 0 && dy > 0 {
				return math.Hypot(dx, dy)
			}
			return math.Max(dx, dy)
		case KindCircle:
			return Separation(b, a)
		}
	}
	panic(ErrUnknownShape)
}

// SeparationVec points from a toward the part of b nearest to it. For a
// circle against a rectangle it runs from the circle's center to the
// nearest point of the rectangle (the nearest edge when the center is
// inside). Its dominant axis is the axis to push out or reflect along.
// A center lying exactly on the border yields the outward unit normal of
// that edge.
func SeparationVec(a, b Bounds) common.Vec2 {
	switch a.Kind {
	case KindCircle:
		switch b.Kind {
		case KindRectangle:
			if b.BB().ContainsVect(a.Center.CP()) {
				edge, depth, normal := b.nearestEdge(a.Center)
				if depth == 0 {
					return normal
				}
				return edge.Sub(a.Center)
			}
			return b.Nearest(a.Center).Sub(a.Center)
		case KindCircle:
			d := a.Center.Sub(b.Center)
			l := d.Length()
			if l == 0 {
				return common.Vec2{}
			}
			surface := b.Center.Add(d.Scale(b.Radius / l))
			return surface.Sub(a.Center)
		}
	case KindRectangle:
		switch b.Kind {
		case KindRectangle:
			return b.Nearest(a.Center).Sub(a.Nearest(b.Center))
		case KindCircle:
			return SeparationVec(b, a).Scale(-1)
		}
	}
	panic(ErrUnknownShape)
}

// nearestEdge returns the point on the rectangle's border closest to p,
// which must lie inside the rectangle, its distance from p and the outward
// normal of that edge.
func (b Bounds) nearestEdge(p common.Vec2) (common.Vec2, float64, common.Vec2) {
	edge, normal := common.Vec2{X: b.Left, Y: p.Y}, common.Vec2{X: -1}
	depth := p.X - b.Left
	if d := b.Right - p.X; d < depth {
		edge, normal, depth = common.Vec2{X: b.Right, Y: p.Y}, common.Vec2{X: 1}, d
	}
	if d := p.Y - b.Up; d < depth {
		edge, normal, depth = common.Vec2{X: p.X, Y: b.Up}, common.Vec2{Y: -1}, d
	}
	if d := b.Down - p.Y; d < depth {
		edge, normal, depth = common.Vec2{X: p.X, Y: b.Down}, common.Vec2{Y: 1}, d
	}
	return edge, depth, normal
}
