package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/require"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, h, v))
}

func newTestAudio(names ...string) *component.Audio {
	return &component.Audio{
		Names:   names,
		Players: make([]*audio.Player, len(names)),
		Volume:  make([]float64, len(names)),
		Play:    make([]bool, len(names)),
		Stop:    make([]bool, len(names)),
	}
}

func newTestHero(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.HeroTagComponent, &component.HeroTag{})
	mustAdd(t, w, e, component.HeroComponent, &component.Hero{Speed: 200, JumpSpeed: 600, BounceSpeed: 200})
	mustAdd(t, w, e, component.InputComponent, &component.Input{})
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{AnchorX: 0.5, AnchorY: 0.5})
	mustAdd(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 36, Height: 42, Mass: 1, Gravity: true, CollideWorldBounds: true})
	mustAdd(t, w, e, component.OverlapComponent, &component.Overlap{Width: 36, Height: 42})
	mustAdd(t, w, e, component.AudioComponent, newTestAudio("jump", "hurt"))
	return e
}

func newTestPickup[T any](t *testing.T, w *ecs.World, tag component.ComponentHandle[T], sound string, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	var zero T
	mustAdd(t, w, e, tag, &zero)
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{AnchorX: 0.5, AnchorY: 0.5})
	mustAdd(t, w, e, component.OverlapComponent, &component.Overlap{Width: 22, Height: 22})
	mustAdd(t, w, e, component.AudioComponent, newTestAudio(sound))
	return e
}

// spiderLifecycle mirrors prefabs/scripts/spider.tengo.
func spiderLifecycle() *component.Lifecycle {
	return &component.Lifecycle{
		Initial: "alive",
		OnEnter: map[string][]component.LifecycleAction{
			"alive": {{Op: OpAnimation, Name: "crawl", Value: true}},
			"dying": {
				{Op: OpDisableBody, Value: true},
				{Op: OpDisableOverlap, Value: true},
				{Op: OpAnimation, Name: "die", Value: true},
				{Op: OpSound, Name: "stomp", Value: true},
			},
			"removed": {{Op: OpDestroy, Value: true}},
		},
		Transitions: map[string]map[string]string{
			"alive": {EventStomped: "dying"},
			"dying": {EventAnimationFinished: "removed"},
		},
	}
}

func newTestSpider(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyTagComponent, &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyComponent, &component.Enemy{Speed: 100})
	mustAdd(t, w, e, component.LifecycleComponent, spiderLifecycle())
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{AnchorX: 0.5, AnchorY: 0.5})
	mustAdd(t, w, e, component.AnimationComponent, &component.Animation{
		FrameW: 42,
		FrameH: 32,
		Defs: map[string]component.AnimationDef{
			"crawl": {Frames: []int{0, 1, 2}, FPS: 8, Loop: true},
			"die":   {Frames: []int{0, 4, 0, 4, 0, 4, 3, 3, 3, 3, 3, 3}, FPS: 12},
		},
	})
	mustAdd(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 42, Height: 32, Mass: 1, Gravity: true, CollideWorldBounds: true})
	mustAdd(t, w, e, component.OverlapComponent, &component.Overlap{Width: 42, Height: 32})
	mustAdd(t, w, e, component.AudioComponent, newTestAudio("stomp"))
	return e
}

func levelChangeRequests(w *ecs.World) []component.LevelChangeRequest {
	var out []component.LevelChangeRequest
	ecs.ForEach(w, component.LevelChangeRequestComponent, func(_ ecs.Entity, req *component.LevelChangeRequest) {
		out = append(out, *req)
	})
	return out
}
