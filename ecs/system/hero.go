package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Hero animation names.
const (
	AnimStop = "stop"
	AnimRun  = "run"
	AnimJump = "jump"
	AnimFall = "fall"
)

// MoveHero sets the horizontal velocity for a direction in [-1, 1] and turns
// the sprite to face the way the hero moves. Zero velocity keeps the
// current facing.
func MoveHero(body *component.PhysicsBody, sprite *component.Sprite, hero *component.Hero, direction float64) {
	if body == nil || hero == nil {
		return
	}
	body.Velocity.X = direction * hero.Speed
	if sprite == nil {
		return
	}
	if body.Velocity.X > 0 {
		sprite.FacingLeft = false
	} else if body.Velocity.X < 0 {
		sprite.FacingLeft = true
	}
}

// JumpHero launches the hero upward only while standing on something.
func JumpHero(body *component.PhysicsBody, hero *component.Hero) bool {
	if body == nil || hero == nil || !body.Touching.Down {
		return false
	}
	body.Velocity.Y = -hero.JumpSpeed
	return true
}

func BounceHero(body *component.PhysicsBody, hero *component.Hero) {
	if body == nil || hero == nil {
		return
	}
	body.Velocity.Y = -hero.BounceSpeed
}

// SelectHeroAnimation picks the hero animation for the current motion:
// rising beats falling, falling beats running, running beats standing.
func SelectHeroAnimation(vx, vy float64, touchingDown bool) string {
	switch {
	case vy < 0:
		return AnimJump
	case !touchingDown:
		return AnimFall
	case vx != 0:
		return AnimRun
	default:
		return AnimStop
	}
}

type HeroControlSystem struct{}

func NewHeroControlSystem() *HeroControlSystem { return &HeroControlSystem{} }

func (s *HeroControlSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.HeroComponent, component.InputComponent, component.PhysicsBodyComponent, func(e ecs.Entity, hero *component.Hero, input *component.Input, body *component.PhysicsBody) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		MoveHero(body, sprite, hero, input.MoveX)
		if input.JumpPressed && JumpHero(body, hero) {
			if audioComp, ok := ecs.Get(w, e, component.AudioComponent); ok {
				audioComp.Request("jump")
			}
		}
	})
}

type HeroAnimationSystem struct{}

func NewHeroAnimationSystem() *HeroAnimationSystem { return &HeroAnimationSystem{} }

func (s *HeroAnimationSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.HeroTagComponent, component.PhysicsBodyComponent, component.AnimationComponent, func(e ecs.Entity, _ *component.HeroTag, body *component.PhysicsBody, anim *component.Animation) {
		name := SelectHeroAnimation(body.Velocity.X, body.Velocity.Y, body.Touching.Down)
		if anim.Current != name {
			anim.Play(name)
		}
	})
}
