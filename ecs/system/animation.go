package system

import (
	"image"
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim *component.Animation) {
		AdvanceAnimation(anim)

		sprite, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || anim.FrameW <= 0 || anim.FrameH <= 0 {
			return
		}
		x := anim.SheetFrame() * anim.FrameW
		sprite.Source = image.Rect(x, 0, x+anim.FrameW, anim.FrameH)
		sprite.UseSource = true
	})
}

// AdvanceAnimation moves anim forward by one tick. A one-shot animation
// holds its last frame and reports Finished.
func AdvanceAnimation(anim *component.Animation) {
	if anim == nil || !anim.Playing {
		return
	}
	def, ok := anim.Defs[anim.Current]
	if !ok || len(def.Frames) == 0 {
		return
	}

	anim.FrameTimer++
	if anim.FrameTimer < ticksPerFrame(def.FPS) {
		return
	}
	anim.FrameTimer = 0
	anim.Frame++
	if anim.Frame < len(def.Frames) {
		return
	}
	if def.Loop {
		anim.Frame = 0
		return
	}
	anim.Frame = len(def.Frames) - 1
	anim.Playing = false
	anim.Finished = true
}

func ticksPerFrame(fps float64) int {
	if fps <= 0 {
		return common.TPS
	}
	n := int(math.Round(common.TPS / fps))
	if n < 1 {
		n = 1
	}
	return n
}
