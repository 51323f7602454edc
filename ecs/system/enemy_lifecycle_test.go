package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpiderDeathSequence(t *testing.T) {
	w := ecs.NewWorld()
	e := newTestSpider(t, w, 300, 300)
	lifecycle := NewEnemyLifecycleSystem()
	animation := NewAnimationSystem()

	lifecycle.Update(w)
	enemy, _ := ecs.Get(w, e, component.EnemyComponent)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	require.Equal(t, "alive", enemy.State)
	require.Equal(t, "crawl", anim.Current)

	assert.False(t, SendLifecycleEvent(w, e, EventAnimationFinished), "no such transition while alive")
	require.True(t, KillEnemy(w, e))
	assert.False(t, KillEnemy(w, e), "stomping a dying spider does nothing")

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	ov, _ := ecs.Get(w, e, component.OverlapComponent)
	audioComp, _ := ecs.Get(w, e, component.AudioComponent)
	assert.Equal(t, "dying", enemy.State)
	assert.Equal(t, "die", anim.Current)
	assert.True(t, body.Disabled)
	assert.True(t, ov.Disabled)
	assert.True(t, audioComp.Requested("stomp"))

	// 12 frames at 12 fps take 60 ticks.
	frames := 0
	for ecs.IsAlive(w, e) && frames < 200 {
		animation.Update(w)
		lifecycle.Update(w)
		frames++
	}
	assert.False(t, ecs.IsAlive(w, e))
	assert.Equal(t, 60, frames)
}

func TestLifecycleIgnoresEntitiesWithoutTable(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyComponent, &component.Enemy{Speed: 100})

	NewEnemyLifecycleSystem().Update(w)
	assert.False(t, KillEnemy(w, e))
	assert.True(t, ecs.IsAlive(w, e))
}
