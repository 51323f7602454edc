package component

// Collision categories. Hero and enemies never collide with each other; that
// contact is an overlap handled outside the physics step.
const (
	LayerPlatform uint32 = 1 << iota
	LayerBoundaryWall
	LayerHero
	LayerEnemy
	LayerWorldBounds
)

// CollisionLayer declares a collision category and the categories it
// collides with.
type CollisionLayer struct {
	// Category defaults to LayerPlatform when zero.
	Category uint32 `yaml:"category,omitempty"`
	// Mask defaults to all bits when zero.
	Mask uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
