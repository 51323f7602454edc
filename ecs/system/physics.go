package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeBounds
)

// Velocities below this are snapped to zero on write-back so that resting
// bodies report exactly zero.
const velocityEpsilon = 1e-6

const physicsStep = 1.0 / common.TPS

const boundsThickness = 1.0

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	world    *ecs.World
	entities map[ecs.Entity]*bodyInfo
	actors   map[*cp.Shape]ecs.Entity

	bounds       []*cp.Shape
	boundsEntity ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(iterations int) *PhysicsSystem {
	space := cp.NewSpace()
	if iterations <= 0 {
		iterations = 20
	}
	space.Iterations = uint(iterations)
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
		actors:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity sets the downward acceleration in pixels per second squared.
func (ps *PhysicsSystem) SetGravity(g float64) {
	if ps == nil || ps.space == nil {
		return
	}
	ps.space.SetGravity(cp.Vector{X: 0, Y: g})
}

func (ps *PhysicsSystem) Gravity() float64 {
	if ps == nil || ps.space == nil {
		return 0
	}
	return ps.space.Gravity().Y
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.world = w
	ps.ensureHandlers()
	ps.syncBounds(w)
	ps.syncEntities(w)

	ecs.ForEach(w, component.PhysicsBodyComponent, func(e ecs.Entity, body *component.PhysicsBody) {
		body.Touching = component.Contact{}
		body.Blocked = component.Contact{}
		if body.Static || body.Disabled || body.Body == nil {
			return
		}
		body.Body.SetVelocityVector(body.Velocity)
	})

	ps.space.Step(physicsStep)

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Static || body.Disabled || body.Body == nil {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X - body.OffsetX
		t.Y = pos.Y - body.OffsetY
		v := body.Body.Velocity()
		body.Velocity = cp.Vector{X: snap(v.X), Y: snap(v.Y)}
	})
}

func snap(v float64) float64 {
	if math.Abs(v) < velocityEpsilon {
		return 0
	}
	return v
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	solidHandler := ps.space.NewCollisionHandler(collisionTypeActor, collisionTypeSolid)
	solidHandler.UserData = ps
	solidHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if body, n, ok := sys.contactFor(arb); ok {
			markContact(&body.Touching, n)
		}
		return true
	}

	boundsHandler := ps.space.NewCollisionHandler(collisionTypeActor, collisionTypeBounds)
	boundsHandler.UserData = ps
	boundsHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if body, n, ok := sys.contactFor(arb); ok {
			markContact(&body.Blocked, n)
		}
		return true
	}

	ps.handlersReady = true
}

// contactFor resolves the actor side of an arbiter and returns the normal
// pointing from the actor toward whatever it hit.
func (ps *PhysicsSystem) contactFor(arb *cp.Arbiter) (*component.PhysicsBody, cp.Vector, bool) {
	shapeA, shapeB := arb.Shapes()
	e, actorIsA := ps.actors[shapeA]
	if !actorIsA {
		var okB bool
		e, okB = ps.actors[shapeB]
		if !okB {
			return nil, cp.Vector{}, false
		}
	}
	body, ok := ecs.Get(ps.world, e, component.PhysicsBodyComponent)
	if !ok {
		return nil, cp.Vector{}, false
	}
	n := arb.Normal()
	if !actorIsA {
		n = n.Neg()
	}
	return body, n, true
}

// markContact maps a normal in screen coordinates (y down) onto the side of
// the actor that made contact.
func markContact(c *component.Contact, n cp.Vector) {
	switch {
	case n.Y > 0.5:
		c.Down = true
	case n.Y < -0.5:
		c.Up = true
	}
	switch {
	case n.X > 0.5:
		c.Right = true
	case n.X < -0.5:
		c.Left = true
	}
}

func (ps *PhysicsSystem) syncBounds(w *ecs.World) {
	e, ok := ecs.First(w, component.LevelBoundsComponent)
	if ok && e == ps.boundsEntity && len(ps.bounds) > 0 {
		return
	}
	for _, shape := range ps.bounds {
		ps.space.RemoveShape(shape)
	}
	ps.bounds = nil
	ps.boundsEntity = 0
	if !ok {
		return
	}
	lb, _ := ecs.Get(w, e, component.LevelBoundsComponent)
	if lb.Width <= 0 || lb.Height <= 0 {
		return
	}

	corners := []cp.Vector{
		{X: 0, Y: 0},
		{X: lb.Width, Y: 0},
		{X: lb.Width, Y: lb.Height},
		{X: 0, Y: lb.Height},
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(component.LayerWorldBounds), uint(component.LayerHero|component.LayerEnemy))
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		shape := cp.NewSegment(ps.space.StaticBody, a, b, boundsThickness)
		shape.SetCollisionType(collisionTypeBounds)
		shape.SetFilter(filter)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		ps.space.AddShape(shape)
		ps.bounds = append(ps.bounds, shape)
	}
	ps.boundsEntity = e
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Disabled {
			return
		}
		if _, ok := ps.entities[e]; ok {
			return
		}
		info := ps.createBodyInfo(w, e, body, t)
		if info == nil {
			return
		}
		ps.entities[e] = info
		body.Body = info.body
		body.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		return nil
	}

	centerX := t.X + bodyComp.OffsetX
	centerY := t.Y + bodyComp.OffsetY
	filter := shapeFilter(w, e, bodyComp)

	if bodyComp.Static {
		bb := cp.BB{L: centerX - width/2, B: centerY - height/2, R: centerX + width/2, T: centerY + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment keeps boxes upright.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: centerX, Y: centerY})
	body.SetVelocityVector(bodyComp.Velocity)
	if !bodyComp.Gravity {
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(b, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	ps.actors[shape] = e

	return &bodyInfo{body: body, shape: shape}
}

func shapeFilter(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody) cp.ShapeFilter {
	category := component.LayerPlatform
	mask := ^uint32(0)
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent); ok {
		if layer.Category != 0 {
			category = layer.Category
		}
		if layer.Mask != 0 {
			mask = layer.Mask
		}
	}
	if !bodyComp.CollideWorldBounds {
		mask &^= component.LayerWorldBounds
	}
	return cp.NewShapeFilter(cp.NO_GROUP, uint(category), uint(mask))
}

// cleanupEntities drops bodies whose entity died, lost its PhysicsBody, or
// was disabled.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if ok && !bodyComp.Disabled && bodyComp.Shape == info.shape {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.actors, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		if ok {
			bodyComp.Body = nil
			bodyComp.Shape = nil
			bodyComp.Velocity = cp.Vector{}
		}
		delete(ps.entities, e)
	}
}
