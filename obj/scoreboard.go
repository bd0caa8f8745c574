package obj

import (
	"fmt"
	"image/color"

	"github.com/milk9111/pong/common"
)

// Scoreboard shows the score centered on its position. It never collides.
type Scoreboard struct {
	base
	score ScoreboardData
}

func NewScoreboard(pos common.Vec2) *Scoreboard {
	return &Scoreboard{base: base{pos: pos}}
}

func (s *Scoreboard) Score() ScoreboardData {
	return s.score
}

func (s *Scoreboard) Data() (Data, bool) {
	return s.score, true
}

// SetData accepts ScoreboardData and ignores anything else.
func (s *Scoreboard) SetData(d Data) {
	if score, ok := d.(ScoreboardData); ok {
		s.score = score
	}
}

func (s *Scoreboard) Text() string {
	return fmt.Sprintf("%d : %d", s.score.Left, s.score.Right)
}

func (s *Scoreboard) Draw(surface Surface) error {
	text := s.Text()
	w, h := surface.MeasureText(text)
	return surface.DrawText(text, s.pos.X-w/2, s.pos.Y-h/2, color.White)
}
