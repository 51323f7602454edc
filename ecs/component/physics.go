package component

import "github.com/jakecoffman/cp"

// Contact records which sides of a body touched something during the last
// physics step.
type Contact struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

func (c Contact) None() bool {
	return !c.Up && !c.Down && !c.Left && !c.Right
}

// PhysicsBody is an axis-aligned box body. Behaviour systems read and write
// Velocity and the contact flags; only PhysicsSystem touches Body and Shape.
//
// Touching is set by contact with other bodies, Blocked by the world bounds.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
	Mass   float64

	// Center offset of the box from the transform, in pixels.
	OffsetX float64
	OffsetY float64

	Static             bool
	Gravity            bool
	CollideWorldBounds bool
	Disabled           bool

	Velocity cp.Vector
	Touching Contact
	Blocked  Contact
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
