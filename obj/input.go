package obj

// Key is a keyboard key the simulation cares about.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single press or release reported by the input backend.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// KeySet is the set of keys currently held down.
type KeySet map[Key]struct{}

func (s KeySet) Held(k Key) bool {
	_, ok := s[k]
	return ok
}

// Apply folds an event into the set: a press adds, a release removes.
func (s KeySet) Apply(evt KeyEvent) {
	if evt.Key == KeyUnknown {
		return
	}
	if evt.Pressed {
		s[evt.Key] = struct{}{}
		return
	}
	delete(s, evt.Key)
}

// Controls is the key pair that drives a paddle.
type Controls struct {
	Up   Key
	Down Key
}

var (
	ControlsWS     = Controls{Up: KeyW, Down: KeyS}
	ControlsArrows = Controls{Up: KeyUp, Down: KeyDown}
)
