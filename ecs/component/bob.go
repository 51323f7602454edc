package component

// Bob moves an entity up and down around BaseY with a sinusoidal in-out
// yoyo: Offset at the start, Offset+Distance after Period frames, back after
// another Period.
type Bob struct {
	BaseY       float64
	Offset      float64
	Distance    float64
	Period      int
	Tick        int
	Initialized bool
}

var BobComponent = NewComponent[Bob]()
