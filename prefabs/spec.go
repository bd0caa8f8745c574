package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/sim"
	"gopkg.in/yaml.v3"
)

// SimSpecFile is the prefab holding the simulation settings.
const SimSpecFile = "pong.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type FieldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BallSpec struct {
	Radius float64 `yaml:"radius"`
}

type PaddleSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"`
}

type ScoreboardSpec struct {
	Y        float64 `yaml:"y"`
	FontSize float64 `yaml:"font_size"`
}

// SimSpec is every tunable of a match. Fields missing from the YAML keep
// their DefaultSimSpec value.
type SimSpec struct {
	Name             string         `yaml:"name"`
	InitialBallSpeed float64        `yaml:"initial_ball_speed"`
	PaddleSpeed      float64        `yaml:"paddle_speed"`
	BounceFactor     float64        `yaml:"bounce_factor"`
	FixedTickRate    float64        `yaml:"fixed_tick_rate"`
	TargetFrameRate  float64        `yaml:"target_frame_rate"`
	Field            FieldSpec      `yaml:"field"`
	Ball             BallSpec       `yaml:"ball"`
	Paddle           PaddleSpec     `yaml:"paddle"`
	Scoreboard       ScoreboardSpec `yaml:"scoreboard"`
}

func DefaultSimSpec() SimSpec {
	return SimSpec{
		Name:             "pong",
		InitialBallSpeed: 100,
		PaddleSpeed:      150,
		BounceFactor:     1.05,
		FixedTickRate:    60,
		TargetFrameRate:  60,
		Field:            FieldSpec{Width: 800, Height: 600},
		Ball:             BallSpec{Radius: 23},
		Paddle:           PaddleSpec{Width: 15, Height: 50, Inset: 40},
		Scoreboard:       ScoreboardSpec{Y: 50, FontSize: 40},
	}
}

func LoadSimSpec(filename string) (*SimSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSimSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

func DecodeSimSpec(data []byte) (*SimSpec, error) {
	spec := DefaultSimSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *SimSpec) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSpec, name, v))
		}
	}
	positive("initial_ball_speed", s.InitialBallSpeed)
	positive("paddle_speed", s.PaddleSpeed)
	positive("fixed_tick_rate", s.FixedTickRate)
	positive("target_frame_rate", s.TargetFrameRate)
	positive("field.width", s.Field.Width)
	positive("field.height", s.Field.Height)
	positive("ball.radius", s.Ball.Radius)
	positive("paddle.width", s.Paddle.Width)
	positive("paddle.height", s.Paddle.Height)
	positive("scoreboard.font_size", s.Scoreboard.FontSize)

	if s.BounceFactor <= 1 {
		errs = append(errs, fmt.Errorf("%w: bounce_factor must be above 1, got %v", ErrInvalidSpec, s.BounceFactor))
	}
	if s.Paddle.Height >= s.Field.Height {
		errs = append(errs, fmt.Errorf("%w: paddle.height %v does not fit in field.height %v", ErrInvalidSpec, s.Paddle.Height, s.Field.Height))
	}
	if 2*s.Ball.Radius >= s.Field.Height || 2*s.Ball.Radius >= s.Field.Width {
		errs = append(errs, fmt.Errorf("%w: ball.radius %v does not fit in the field", ErrInvalidSpec, s.Ball.Radius))
	}
	if s.Paddle.Inset < 0 || s.Paddle.Inset >= s.Field.Width/2 {
		errs = append(errs, fmt.Errorf("%w: paddle.inset %v must be within the half field", ErrInvalidSpec, s.Paddle.Inset))
	}
	return errors.Join(errs...)
}

func (s *SimSpec) Tuning() obj.Tuning {
	return obj.Tuning{
		BallSpeed:    s.InitialBallSpeed,
		PaddleSpeed:  s.PaddleSpeed,
		BounceFactor: s.BounceFactor,
	}
}

func (s *SimSpec) Court() obj.CourtSpec {
	return obj.CourtSpec{
		Width:        s.Field.Width,
		Height:       s.Field.Height,
		BallRadius:   s.Ball.Radius,
		PaddleWidth:  s.Paddle.Width,
		PaddleHeight: s.Paddle.Height,
		PaddleInset:  s.Paddle.Inset,
		ScoreboardY:  s.Scoreboard.Y,
	}
}

func (s *SimSpec) LoopConfig() sim.Config {
	return sim.RatesConfig(s.FixedTickRate, s.TargetFrameRate)
}
