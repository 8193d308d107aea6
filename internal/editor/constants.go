package editor

// Kind selects the geometry of a Shape.
type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	}
	return "unknown"
}

// State is the pointer-interaction state of a Canvas.
type State int

const (
	StateIdle State = iota
	StateCreatingShape
	StateSelectingOrMoving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreatingShape:
		return "creating"
	case StateSelectingOrMoving:
		return "moving"
	}
	return "unknown"
}

const (
	// DefaultSize is the width and height of a shape created by a click.
	DefaultSize = 60.0
	// MinSize is the smallest width or height of a dragged shape.
	MinSize = 10.0
	// ClickThreshold is the drag distance below which a gesture is a click.
	ClickThreshold = 5.0
	// MoveThreshold is the displacement below which a drag is not recorded.
	MoveThreshold = 2.0
	// SnapDistance is the default magnetic snapping range.
	SnapDistance = 10.0
)
