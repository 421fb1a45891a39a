package clicker

import "time"

type Button string

const (
	ButtonLeft   Button = "Left"
	ButtonRight  Button = "Right"
	ButtonMiddle Button = "Middle"
)

// Point is a screen coordinate pair.
type Point struct {
	X int
	Y int
}

// Job holds the parameters of one clicking run. A Job is captured by value
// at Start time and never shared with the caller afterwards.
type Job struct {
	Targets  []Point
	Interval time.Duration
	Repeat   int // 0 = unbounded
	Button   Button
	Double   bool
}

// Pointer performs the actual pointer moves and clicks. Implementations live
// in internal/adapters.
type Pointer interface {
	MoveTo(x, y int) error
	Click(button Button, presses int) error
}

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
