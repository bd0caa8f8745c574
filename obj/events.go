package obj

type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ScoreEvent is posted by the ball when it reaches a goal line.
type ScoreEvent struct {
	Side Side
}

// EventQueue holds the score events posted during a fixed step until the
// loop drains them.
type EventQueue struct {
	items []ScoreEvent
}

func (q *EventQueue) Push(evt ScoreEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain empties the queue, returning events in the order they were pushed.
func (q *EventQueue) Drain() []ScoreEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// ApplyScore credits evt to every scoreboard in the arena and returns how
// many were updated. Scoreboards that are borrowed elsewhere are skipped.
func ApplyScore(a *Arena, evt ScoreEvent) int {
	updated := 0
	for i := 0; i < a.Len(); i++ {
		a.TryWrite(i, func(actor Actor) {
			d, ok := actor.Data()
			if !ok {
				return
			}
			score, ok := d.(ScoreboardData)
			if !ok {
				return
			}
			if evt.Side == SideRight {
				score.Right++
			} else {
				score.Left++
			}
			actor.SetData(score)
			updated++
		})
	}
	return updated
}
