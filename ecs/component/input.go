package component

// Input is the hero's command for the current frame. MoveX is in [-1, 1].
type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
