package component

// LevelBounds is the world rectangle that bodies with CollideWorldBounds
// cannot leave.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
