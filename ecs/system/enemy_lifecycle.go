package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
	"github.com/sirupsen/logrus"
)

// Lifecycle events.
const (
	EventStomped           = "stomped"
	EventAnimationFinished = "animation_finished"
)

// Lifecycle on-enter operations.
const (
	OpAnimation      = "animation"
	OpDisableBody    = "disable_body"
	OpDisableOverlap = "disable_overlap"
	OpSound          = "sound"
	OpDestroy        = "destroy"
)

// EnemyLifecycleSystem starts each enemy in its initial state and fires
// animation_finished once a one-shot animation has played out.
type EnemyLifecycleSystem struct{}

func NewEnemyLifecycleSystem() *EnemyLifecycleSystem { return &EnemyLifecycleSystem{} }

func (s *EnemyLifecycleSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.EnemyComponent, component.LifecycleComponent, func(e ecs.Entity, enemy *component.Enemy, lc *component.Lifecycle) {
		if enemy.State == "" {
			enterState(w, e, enemy, lc, lc.Initial)
			return
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok && anim.Finished {
			SendLifecycleEvent(w, e, EventAnimationFinished)
		}
	})
}

// KillEnemy starts the stomp death of an enemy.
func KillEnemy(w *ecs.World, e ecs.Entity) bool {
	return SendLifecycleEvent(w, e, EventStomped)
}

// SendLifecycleEvent runs the transition for event out of the enemy's
// current state. It reports false when the entity is gone or has no such
// transition.
func SendLifecycleEvent(w *ecs.World, e ecs.Entity, event string) bool {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent)
	if !ok {
		return false
	}
	lc, ok := ecs.Get(w, e, component.LifecycleComponent)
	if !ok {
		return false
	}
	next, ok := lc.Transitions[enemy.State][event]
	if !ok {
		return false
	}
	logger.Log.WithFields(logrus.Fields{
		"entity": e.String(),
		"from":   enemy.State,
		"to":     next,
		"event":  event,
	}).Debug("enemy lifecycle")
	enterState(w, e, enemy, lc, next)
	return true
}

func enterState(w *ecs.World, e ecs.Entity, enemy *component.Enemy, lc *component.Lifecycle, state string) {
	enemy.State = state
	for _, act := range lc.OnEnter[state] {
		switch act.Op {
		case OpAnimation:
			if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
				anim.Play(act.Name)
			}
		case OpDisableBody:
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
				body.Disabled = act.Value
			}
		case OpDisableOverlap:
			if ov, ok := ecs.Get(w, e, component.OverlapComponent); ok {
				ov.Disabled = act.Value
			}
		case OpSound:
			if audioComp, ok := ecs.Get(w, e, component.AudioComponent); ok {
				audioComp.Request(act.Name)
			}
		case OpDestroy:
			if act.Value {
				ecs.DestroyEntity(w, e)
				return
			}
		}
	}
}
