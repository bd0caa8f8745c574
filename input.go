package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pong/obj"
)

var keyMap = map[ebiten.Key]obj.Key{
	ebiten.KeyW:         obj.KeyW,
	ebiten.KeyS:         obj.KeyS,
	ebiten.KeyArrowUp:   obj.KeyUp,
	ebiten.KeyArrowDown: obj.KeyDown,
	ebiten.KeyEscape:    obj.KeyEscape,
}

// Input turns ebiten's key edges into the events the loop consumes.
type Input struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []obj.KeyEvent
}

func NewInput() *Input {
	return &Input{}
}

// Poll returns this tick's presses and releases. The slice is reused by the
// next call.
func (in *Input) Poll() []obj.KeyEvent {
	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	in.released = inpututil.AppendJustReleasedKeys(in.released[:0])

	in.events = in.events[:0]
	for _, k := range in.pressed {
		if key, ok := keyMap[k]; ok {
			in.events = append(in.events, obj.KeyEvent{Key: key, Pressed: true})
		}
	}
	for _, k := range in.released {
		if key, ok := keyMap[k]; ok {
			in.events = append(in.events, obj.KeyEvent{Key: key, Pressed: false})
		}
	}
	return in.events
}
