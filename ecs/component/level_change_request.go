package component

type LevelChange int

const (
	LevelRestart LevelChange = iota + 1
	LevelAdvance
)

func (c LevelChange) String() string {
	switch c {
	case LevelRestart:
		return "restart"
	case LevelAdvance:
		return "advance"
	default:
		return "none"
	}
}

// LevelChangeRequest is a one-shot request emitted by gameplay systems and
// consumed by the play state between frames, which owns world rebuilding.
type LevelChangeRequest struct {
	Kind   LevelChange
	Reason string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
