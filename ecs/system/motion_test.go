package system

import (
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatrolTurnsAround(t *testing.T) {
	enemy := &component.Enemy{Speed: 100}

	body := &component.PhysicsBody{Velocity: cp.Vector{X: 100}, Touching: component.Contact{Right: true}}
	Patrol(enemy, body)
	assert.Equal(t, -100.0, body.Velocity.X)
	Patrol(enemy, body)
	assert.Equal(t, -100.0, body.Velocity.X, "repeated contact keeps the new direction")

	body = &component.PhysicsBody{Velocity: cp.Vector{X: -100}, Blocked: component.Contact{Left: true}}
	Patrol(enemy, body)
	assert.Equal(t, 100.0, body.Velocity.X)

	body = &component.PhysicsBody{Velocity: cp.Vector{X: 100}, Touching: component.Contact{Down: true}}
	Patrol(enemy, body)
	assert.Equal(t, 100.0, body.Velocity.X)
}

func TestAnimationLoopAndOneShot(t *testing.T) {
	anim := &component.Animation{Defs: map[string]component.AnimationDef{
		"loop": {Frames: []int{5, 6}, FPS: 60, Loop: true},
		"once": {Frames: []int{1, 2, 3}, FPS: 30},
	}}

	require.True(t, anim.Play("loop"))
	for i := 0; i < 5; i++ {
		AdvanceAnimation(anim)
	}
	assert.Equal(t, 6, anim.SheetFrame())
	assert.False(t, anim.Finished)

	require.True(t, anim.Play("once"))
	for i := 0; i < 100; i++ {
		AdvanceAnimation(anim)
	}
	assert.True(t, anim.Finished)
	assert.False(t, anim.Playing)
	assert.Equal(t, 3, anim.SheetFrame())

	assert.False(t, anim.Play("missing"))
	assert.Equal(t, "once", anim.Current)
}

func TestAnimationSystemSetsSourceRect(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := &component.Animation{FrameW: 22, FrameH: 22, Defs: map[string]component.AnimationDef{
		"rotate": {Frames: []int{0, 1, 2, 1}, FPS: 60, Loop: true},
	}}
	anim.Play("rotate")
	mustAdd(t, w, e, component.AnimationComponent, anim)
	mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{})

	NewAnimationSystem().Update(w)

	sprite, _ := ecs.Get(w, e, component.SpriteComponent)
	assert.True(t, sprite.UseSource)
	assert.Equal(t, image.Rect(22, 0, 44, 22), sprite.Source)
}

func TestTicksPerFrame(t *testing.T) {
	assert.Equal(t, 5, ticksPerFrame(12))
	assert.Equal(t, 8, ticksPerFrame(8))
	assert.Equal(t, 1, ticksPerFrame(240))
	assert.Equal(t, 60, ticksPerFrame(0))
}

func TestBobStaysWithinRange(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: 10, Y: 100})
	mustAdd(t, w, e, component.BobComponent, &component.Bob{Offset: -3, Distance: 6, Period: 48})

	sys := NewBobSystem()
	tr, _ := ecs.Get(w, e, component.TransformComponent)

	sys.Update(w)
	assert.InDelta(t, 97.0, tr.Y, 1e-9)
	for i := 1; i <= 200; i++ {
		sys.Update(w)
		require.GreaterOrEqual(t, tr.Y, 97.0-1e-9)
		require.LessOrEqual(t, tr.Y, 103.0+1e-9)
		if i == 48 {
			assert.InDelta(t, 103.0, tr.Y, 1e-9)
		}
		if i == 96 {
			assert.InDelta(t, 97.0, tr.Y, 1e-9)
		}
	}
	assert.Equal(t, 10.0, tr.X)
}

func TestTTLDestroysAfterFrames(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TTLComponent, &component.TTL{Frames: 2})
	sys := NewTTLSystem()

	sys.Update(w)
	assert.True(t, ecs.IsAlive(w, e))
	sys.Update(w)
	assert.False(t, ecs.IsAlive(w, e))
}

func TestAudioClearsFlagsWithoutPlayers(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	a := newTestAudio("coin")
	mustAdd(t, w, e, component.AudioComponent, a)

	require.True(t, a.Request("coin"))
	assert.False(t, a.Request("missing"))
	NewAudioSystem().Update(w)
	assert.False(t, a.Requested("coin"))
}

func TestDrawOrderByLayerThenEntity(t *testing.T) {
	w := ecs.NewWorld()
	add := func(layer int) ecs.Entity {
		e := ecs.CreateEntity(w)
		mustAdd(t, w, e, component.TransformComponent, &component.Transform{})
		mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{})
		mustAdd(t, w, e, component.RenderLayerComponent, &component.RenderLayer{Index: layer})
		return e
	}
	hero := add(component.LayerHeroSprite)
	bg := add(component.LayerBackground)
	coinA := add(component.LayerPickups)
	hud := add(component.LayerHUD)
	coinB := add(component.LayerPickups)

	assert.Equal(t, []ecs.Entity{bg, coinA, coinB, hero, hud}, DrawOrder(w))
}
