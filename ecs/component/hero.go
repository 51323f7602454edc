package component

// Hero holds the hero's movement tuning. Speeds are in pixels per second.
type Hero struct {
	Speed       float64
	JumpSpeed   float64
	BounceSpeed float64
}

var HeroComponent = NewComponent[Hero]()
