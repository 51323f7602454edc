package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PatrolSystem turns enemies around when they run into a wall, a boundary
// wall, or the edge of the world.
type PatrolSystem struct{}

func NewPatrolSystem() *PatrolSystem { return &PatrolSystem{} }

func (s *PatrolSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.EnemyComponent, component.PhysicsBodyComponent, func(e ecs.Entity, enemy *component.Enemy, body *component.PhysicsBody) {
		if body.Disabled {
			return
		}
		Patrol(enemy, body)
	})
}

// Patrol applies one frame of patrol steering.
func Patrol(enemy *component.Enemy, body *component.PhysicsBody) {
	switch {
	case body.Touching.Right || body.Blocked.Right:
		body.Velocity.X = -enemy.Speed
	case body.Touching.Left || body.Blocked.Left:
		body.Velocity.X = enemy.Speed
	}
}
