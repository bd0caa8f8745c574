package obj

type slot struct {
	actor   Actor
	readers int
	writing bool
}

// Arena is the fixed, ordered set of actors on the court. Each slot may be
// borrowed by any number of readers or by a single writer; a borrow that
// would break that rule is refused and the caller skips the slot. Arena is
// not safe for concurrent use.
type Arena struct {
	slots []slot
}

func NewArena(actors ...Actor) *Arena {
	a := &Arena{slots: make([]slot, 0, len(actors))}
	for _, actor := range actors {
		if actor == nil {
			continue
		}
		a.slots = append(a.slots, slot{actor: actor})
	}
	return a
}

func (a *Arena) Len() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// TryRead calls fn with the actor at i unless it is being written.
func (a *Arena) TryRead(i int, fn func(Actor)) bool {
	if a == nil || i < 0 || i >= len(a.slots) {
		return false
	}
	s := &a.slots[i]
	if s.writing {
		return false
	}
	s.readers++
	defer func() { s.readers-- }()
	fn(s.actor)
	return true
}

// TryWrite calls fn with the actor at i unless it is borrowed at all.
func (a *Arena) TryWrite(i int, fn func(Actor)) bool {
	if a == nil || i < 0 || i >= len(a.slots) {
		return false
	}
	s := &a.slots[i]
	if s.writing || s.readers > 0 {
		return false
	}
	s.writing = true
	defer func() { s.writing = false }()
	fn(s.actor)
	return true
}

// Each reads every actor in order, skipping slots that are being written.
func (a *Arena) Each(fn func(i int, actor Actor)) {
	for i := 0; i < a.Len(); i++ {
		a.TryRead(i, func(actor Actor) { fn(i, actor) })
	}
}
