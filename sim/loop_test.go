package sim

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/obj"
)

func newClock() *ManualClock {
	return NewManualClock(time.Unix(1_000, 0))
}

type nopSurface struct {
	cleared int
	circles int
	rects   int
	texts   []string
	failAll bool
}

func (s *nopSurface) Clear() { s.cleared++ }

func (s *nopSurface) FillRect(_, _, _, _ float64, _ color.Color) error {
	s.rects++
	if s.failAll {
		return errors.New("backend lost")
	}
	return nil
}

func (s *nopSurface) FillCircle(common.Vec2, float64, color.Color) error {
	s.circles++
	if s.failAll {
		return errors.New("backend lost")
	}
	return nil
}

func (s *nopSurface) MeasureText(string) (float64, float64) { return 0, 0 }

func (s *nopSurface) DrawText(text string, _, _ float64, _ color.Color) error {
	s.texts = append(s.texts, text)
	return nil
}

func defaultCourt() *obj.Court {
	spec := obj.CourtSpec{
		Width: 800, Height: 600,
		BallRadius:  23,
		PaddleWidth: 15, PaddleHeight: 50, PaddleInset: 40,
		ScoreboardY: 50,
	}
	tuning := &obj.Tuning{BallSpeed: 100, PaddleSpeed: 150, BounceFactor: 1.05}
	return obj.NewCourt(spec, tuning, rand.New(rand.NewPCG(3, 4)))
}

func TestRatesConfig(t *testing.T) {
	cfg := RatesConfig(60, 120)
	if cfg.FixedStep != time.Second/60 {
		t.Fatalf("FixedStep = %v", cfg.FixedStep)
	}
	if cfg.FrameInterval != time.Second/120 {
		t.Fatalf("FrameInterval = %v", cfg.FrameInterval)
	}
}

func TestFrameCapSkipsEarlyFrames(t *testing.T) {
	clock := newClock()
	court := defaultCourt()
	l := NewLoop(RatesConfig(60, 60), court.Arena, clock)

	clock.Advance(5 * time.Millisecond)
	if err := l.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if st := l.Stats(); st.Frames != 0 || st.SkippedFrames != 1 {
		t.Fatalf("stats = %+v", st)
	}

	clock.Advance(15 * time.Millisecond)
	if err := l.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if st := l.Stats(); st.Frames != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestFixedStepAccumulator(t *testing.T) {
	cases := []struct {
		name    string
		elapsed []time.Duration
		want    int
	}{
		{"one_frame_one_step", []time.Duration{20 * time.Millisecond}, 1},
		{"short_frames_carry_over", []time.Duration{17 * time.Millisecond, 17 * time.Millisecond}, 2},
		{"long_frame_catches_up", []time.Duration{70 * time.Millisecond}, 4},
		{"exact_quantum_waits", []time.Duration{time.Second / 60}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock := newClock()
			court := defaultCourt()
			l := NewLoop(RatesConfig(60, 1000), court.Arena, clock)
			for _, d := range tc.elapsed {
				clock.Advance(d)
				if err := l.Frame(nil); err != nil {
					t.Fatalf("Frame: %v", err)
				}
			}
			if got := l.Stats().FixedSteps; got != tc.want {
				t.Fatalf("fixed steps = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBallAdvancesOneTick(t *testing.T) {
	clock := newClock()
	court := defaultCourt()
	court.Ball.SetVelocity(common.Vec2{X: 100, Y: 0})
	cfg := Config{FixedStep: time.Second / 60, FrameInterval: time.Millisecond}
	l := NewLoop(cfg, court.Arena, clock)

	clock.Advance(time.Second/60 + time.Microsecond)
	if err := l.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	if l.Stats().FixedSteps != 1 {
		t.Fatalf("fixed steps = %d", l.Stats().FixedSteps)
	}
	dx := court.Ball.Position().X - 400
	want := 100 * (time.Second / 60).Seconds()
	if math.Abs(dx-want) > 1e-9 {
		t.Fatalf("ball moved %v, want %v", dx, want)
	}
	if math.Abs(dx-1.667) > 1e-3 {
		t.Fatalf("ball moved %v, want about 1.667", dx)
	}
}

func TestHeldKeysDrivePaddle(t *testing.T) {
	clock := newClock()
	court := defaultCourt()
	l := NewLoop(RatesConfig(60, 60), court.Arena, clock)

	clock.Advance(100 * time.Millisecond)
	if err := l.Frame([]obj.KeyEvent{{Key: obj.KeyW, Pressed: true}}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	y1 := court.Left.Position().Y
	if math.Abs(y1-(300-15)) > 1e-9 {
		t.Fatalf("left paddle y = %v, want 285", y1)
	}

	// No new events: W is still held.
	clock.Advance(100 * time.Millisecond)
	if err := l.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if y2 := court.Left.Position().Y; math.Abs(y2-(300-30)) > 1e-9 {
		t.Fatalf("left paddle y = %v, want 270", y2)
	}
	if court.Right.Position().Y != 300 {
		t.Fatalf("right paddle moved to %v", court.Right.Position().Y)
	}

	clock.Advance(100 * time.Millisecond)
	if err := l.Frame([]obj.KeyEvent{{Key: obj.KeyW, Pressed: false}}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if y3 := court.Left.Position().Y; math.Abs(y3-270) > 1e-9 {
		t.Fatalf("released paddle kept moving to %v", y3)
	}
}

func TestEscapeQuits(t *testing.T) {
	for _, pressed := range []bool{true, false} {
		l := NewLoop(RatesConfig(60, 60), defaultCourt().Arena, newClock())
		err := l.Frame([]obj.KeyEvent{{Key: obj.KeyEscape, Pressed: pressed}})
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("pressed=%v: err = %v, want ErrQuit", pressed, err)
		}
		if err := l.Frame(nil); !errors.Is(err, ErrQuit) {
			t.Fatalf("quit should stick, got %v", err)
		}
	}

	l := NewLoop(RatesConfig(60, 60), defaultCourt().Arena, newClock())
	l.Quit()
	if err := l.Frame(nil); !errors.Is(err, ErrQuit) {
		t.Fatalf("Quit: err = %v", err)
	}
}

func TestGoalUpdatesScoreboard(t *testing.T) {
	clock := newClock()
	court := defaultCourt()
	// Place the ball against the left goal line heading out.
	court.Ball.SetPosition(common.Vec2{X: 10, Y: 300})
	court.Ball.SetVelocity(common.Vec2{X: -100, Y: 0})
	l := NewLoop(RatesConfig(60, 60), court.Arena, clock)

	clock.Advance(20 * time.Millisecond)
	if err := l.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	if got := court.Scoreboard.Score(); got != (obj.ScoreboardData{Left: 0, Right: 1}) {
		t.Fatalf("score = %+v", got)
	}
	if court.Ball.Position() != court.Ball.Spawn() {
		t.Fatalf("ball not respawned: %+v", court.Ball.Position())
	}
	if l.Stats().Goals != 1 {
		t.Fatalf("goals = %d", l.Stats().Goals)
	}
}

func TestRebaseDropsPausedTime(t *testing.T) {
	clock := newClock()
	court := defaultCourt()
	l := NewLoop(RatesConfig(60, 60), court.Arena, clock)

	clock.Advance(10 * time.Second)
	l.Rebase()
	clock.Advance(20 * time.Millisecond)
	if err := l.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := l.Stats().FixedSteps; got != 1 {
		t.Fatalf("fixed steps = %d, want 1", got)
	}
}

func TestDrawContinuesPastErrors(t *testing.T) {
	court := defaultCourt()
	l := NewLoop(RatesConfig(60, 60), court.Arena, newClock())
	s := &nopSurface{failAll: true}

	l.Draw(s)

	if s.cleared != 1 {
		t.Fatalf("surface cleared %d times", s.cleared)
	}
	if s.rects != 2 || s.circles != 1 {
		t.Fatalf("rects=%d circles=%d, want 2 and 1", s.rects, s.circles)
	}
	if len(s.texts) != 1 || s.texts[0] != "0 : 0" {
		t.Fatalf("scoreboard text = %v", s.texts)
	}
}
