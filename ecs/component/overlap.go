package component

// Overlap is a non-blocking detection box centred on the transform plus
// offset. A disabled overlap is invisible to the resolver.
type Overlap struct {
	Width    float64
	Height   float64
	OffsetX  float64
	OffsetY  float64
	Disabled bool
}

var OverlapComponent = NewComponent[Overlap]()
