package obj

// Data is the payload an actor exposes to the others: ScoreboardData or
// WallType.
type Data interface {
	data()
}

type ScoreboardData struct {
	Left  uint
	Right uint
}

func (ScoreboardData) data() {}

// WallType marks a wall as a plain boundary or a goal line. A ball crossing
// the WallLeft goal scores for the right player and vice versa.
type WallType uint8

const (
	WallRegular WallType = iota
	WallLeft
	WallRight
)

func (WallType) data() {}

func (t WallType) String() string {
	switch t {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "regular"
	}
}

// Scores returns the side that scores when the ball reaches this wall.
func (t WallType) Scores() (Side, bool) {
	switch t {
	case WallLeft:
		return SideRight, true
	case WallRight:
		return SideLeft, true
	default:
		return 0, false
	}
}
