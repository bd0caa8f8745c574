// Package sim drives the actors: variable-rate Update, fixed-rate
// FixedUpdate through a time accumulator, then Draw.
package sim

import (
	"errors"
	"log"
	"time"

	"github.com/milk9111/pong/obj"
)

// ErrQuit is returned by Frame once the player asks to leave.
var ErrQuit = errors.New("sim: quit")

// Clock is the time source of a Loop.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// ManualClock only moves when told to. It drives headless runs and tests.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type Config struct {
	// FixedStep is the constant quantum handed to FixedUpdate.
	FixedStep time.Duration
	// FrameInterval is the shortest gap between processed frames.
	FrameInterval time.Duration
}

// RatesConfig builds a Config from rates in Hz.
func RatesConfig(fixedTickRate, targetFrameRate float64) Config {
	return Config{
		FixedStep:     time.Duration(float64(time.Second) / fixedTickRate),
		FrameInterval: time.Duration(float64(time.Second) / targetFrameRate),
	}
}

type Stats struct {
	Frames        int
	SkippedFrames int
	FixedSteps    int
	Goals         int
}

type Loop struct {
	cfg   Config
	clock Clock
	arena *obj.Arena

	keys   obj.KeySet
	events obj.EventQueue

	lastFrame time.Time
	carry     time.Duration
	quit      bool

	stats Stats
}

func NewLoop(cfg Config, arena *obj.Arena, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock
	}
	return &Loop{
		cfg:       cfg,
		clock:     clock,
		arena:     arena,
		keys:      obj.KeySet{},
		lastFrame: clock.Now(),
	}
}

// SetConfig swaps the rates. Time already carried over is kept.
func (l *Loop) SetConfig(cfg Config) {
	l.cfg = cfg
}

func (l *Loop) Config() Config {
	return l.cfg
}

func (l *Loop) Arena() *obj.Arena {
	return l.arena
}

func (l *Loop) Stats() Stats {
	return l.stats
}

// Keys is the held-key set as of the last Frame.
func (l *Loop) Keys() obj.KeySet {
	return l.keys
}

// Quit makes the next Frame return ErrQuit.
func (l *Loop) Quit() {
	l.quit = true
}

// Rebase forgets the time since the last processed frame, e.g. after a
// pause, so it is not simulated in one burst.
func (l *Loop) Rebase() {
	l.lastFrame = l.clock.Now()
	l.carry = 0
}

// Frame folds in the input events and, once a full frame interval has
// passed, runs Update on every actor followed by as many FixedUpdate passes
// as the accumulated time allows.
func (l *Loop) Frame(events []obj.KeyEvent) error {
	for _, evt := range events {
		if evt.Key == obj.KeyEscape {
			l.quit = true
		}
		l.keys.Apply(evt)
	}
	if l.quit {
		return ErrQuit
	}

	now := l.clock.Now()
	elapsed := now.Sub(l.lastFrame)
	if elapsed < l.cfg.FrameInterval {
		l.stats.SkippedFrames++
		return nil
	}
	l.lastFrame = now
	l.stats.Frames++

	info := &obj.UpdateInfo{
		Keys:    l.keys,
		Elapsed: elapsed,
		Seconds: elapsed.Seconds(),
		Arena:   l.arena,
		Events:  &l.events,
	}
	l.pass(info, obj.Actor.Update)

	l.carry += elapsed
	info.Elapsed = l.cfg.FixedStep
	info.Seconds = l.cfg.FixedStep.Seconds()
	for l.cfg.FixedStep > 0 && l.carry > l.cfg.FixedStep {
		l.pass(info, obj.Actor.FixedUpdate)
		l.applyScores()
		l.carry -= l.cfg.FixedStep
		l.stats.FixedSteps++
	}
	return nil
}

func (l *Loop) pass(info *obj.UpdateInfo, fn func(obj.Actor, *obj.UpdateInfo)) {
	for i := 0; i < l.arena.Len(); i++ {
		l.arena.TryWrite(i, func(a obj.Actor) { fn(a, info) })
	}
}

func (l *Loop) applyScores() {
	for _, evt := range l.events.Drain() {
		l.stats.Goals++
		if obj.ApplyScore(l.arena, evt) == 0 {
			log.Printf("[sim] %v goal with no scoreboard to record it", evt.Side)
		}
	}
}

// Draw clears s and draws every actor in arena order. A failing actor is
// logged and skipped.
func (l *Loop) Draw(s obj.Surface) {
	s.Clear()
	l.arena.Each(func(i int, a obj.Actor) {
		if err := a.Draw(s); err != nil {
			log.Printf("[sim] draw actor %d: %v", i, err)
		}
	})
}
