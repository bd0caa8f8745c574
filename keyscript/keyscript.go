// Package keyscript plays back keyboard input described by a tengo script.
// A script defines keys(frame, seconds, state) and returns the names of the
// keys held on that frame. It never sees the court, so a given script
// produces the same input on every run.
package keyscript

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/prefabs"
)

var ErrUnknownKey = errors.New("keyscript: unknown key")

const keysDispatchScript = `
__keys = keys(__frame, __seconds, __state)
`

// keyOrder fixes the order events are emitted in.
var keyOrder = []obj.Key{obj.KeyW, obj.KeyS, obj.KeyUp, obj.KeyDown, obj.KeyEscape}

func ParseKey(name string) (obj.Key, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "w":
		return obj.KeyW, true
	case "s":
		return obj.KeyS, true
	case "up":
		return obj.KeyUp, true
	case "down":
		return obj.KeyDown, true
	case "escape", "esc":
		return obj.KeyEscape, true
	}
	return obj.KeyUnknown, false
}

type Script struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// Load compiles a script from prefabs/scripts.
func Load(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("keyscript: load %s: %w", name, err)
	}
	return New(name, src)
}

func New(name string, src []byte) (*Script, error) {
	full := string(src) + "\n" + keysDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__frame", 0)
	_ = script.Add("__seconds", 0.0)
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__keys", nil)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("keyscript: compile %s: %w", name, err)
	}
	return &Script{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (s *Script) Name() string {
	return s.name
}

// SetState stores a value the script reads as state[key].
func (s *Script) SetState(key string, value any) error {
	o, err := tengo.FromInterface(value)
	if err != nil {
		return fmt.Errorf("keyscript: state %s: %w", key, err)
	}
	s.state.Value[key] = o
	return nil
}

// Held runs the script for one frame and returns the keys it holds.
func (s *Script) Held(frame int, elapsed time.Duration) (obj.KeySet, error) {
	if err := s.compiled.Set("__frame", frame); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__seconds", elapsed.Seconds()); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__keys", nil); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("keyscript: run %s: %w", s.name, err)
	}

	held := obj.KeySet{}
	for _, name := range keyNames(s.compiled.Get("__keys").Object()) {
		k, ok := ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("%w %q from %s", ErrUnknownKey, name, s.name)
		}
		held[k] = struct{}{}
	}
	return held, nil
}

// Events returns the presses and releases that turn held into the keys the
// script holds on this frame.
func (s *Script) Events(held obj.KeySet, frame int, elapsed time.Duration) ([]obj.KeyEvent, error) {
	want, err := s.Held(frame, elapsed)
	if err != nil {
		return nil, err
	}
	var events []obj.KeyEvent
	for _, k := range keyOrder {
		if held.Held(k) != want.Held(k) {
			events = append(events, obj.KeyEvent{Key: k, Pressed: want.Held(k)})
		}
	}
	return events, nil
}

func keyNames(o tengo.Object) []string {
	switch v := o.(type) {
	case *tengo.String:
		return []string{v.Value}
	case *tengo.Array:
		return objectStrings(v.Value)
	case *tengo.ImmutableArray:
		return objectStrings(v.Value)
	}
	return nil
}

func objectStrings(objs []tengo.Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		if s, ok := tengo.ToString(o); ok {
			out = append(out, s)
		}
	}
	return out
}
