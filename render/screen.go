package render

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/render/raster"
)

var (
	ErrNoTarget = errors.New("render: no target image")
	ErrNoFace   = errors.New("render: no font face loaded")
)

// Screen draws actors onto an ebiten image. Retarget it at the start of
// every Draw call.
type Screen struct {
	dst  *ebiten.Image
	face text.Face
}

func NewScreen(face text.Face) *Screen {
	return &Screen{face: face}
}

func (s *Screen) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(color.Black)
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
	return nil
}

// FillCircle rasterizes the circle as one-pixel-tall rows so the ball keeps
// its hard pixel edge.
func (s *Screen) FillCircle(center common.Vec2, radius float64, clr color.Color) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	cx := int(math.Round(center.X))
	cy := int(math.Round(center.Y))
	for _, span := range raster.CircleSpans(cx, cy, int(math.Round(radius))) {
		vector.FillRect(s.dst, float32(span.X0), float32(span.Y), float32(span.X1-span.X0+1), 1, clr, false)
	}
	return nil
}

func (s *Screen) MeasureText(str string) (float64, float64) {
	if s.face == nil {
		return 0, 0
	}
	return text.Measure(str, s.face, 0)
}

func (s *Screen) DrawText(str string, x, y float64, clr color.Color) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	if s.face == nil {
		return ErrNoFace
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, s.face, op)
	return nil
}
