package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *session.Session {
	return session.New(0, 2, prefabs.DefaultRules())
}

func newTestDoor(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.DoorTagComponent, &component.DoorTag{})
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.OverlapComponent, &component.Overlap{Width: 42, Height: 66, OffsetY: -33})
	mustAdd(t, w, e, component.AudioComponent, newTestAudio("door"))
	return e
}

func TestCoinsCollectedOnceAndRemoved(t *testing.T) {
	w := ecs.NewWorld()
	sess := newTestSession()
	newTestHero(t, w, 200, 200)
	coins := []ecs.Entity{
		newTestPickup(t, w, component.CoinTagComponent, "coin", 195, 195),
		newTestPickup(t, w, component.CoinTagComponent, "coin", 205, 205),
		newTestPickup(t, w, component.CoinTagComponent, "coin", 200, 210),
	}
	far := newTestPickup(t, w, component.CoinTagComponent, "coin", 600, 400)

	overlap := NewOverlapSystem(sess)
	ttl := NewTTLSystem()

	overlap.Update(w)
	assert.Equal(t, 3, sess.Coins)
	for _, c := range coins {
		ov, _ := ecs.Get(w, c, component.OverlapComponent)
		sprite, _ := ecs.Get(w, c, component.SpriteComponent)
		audioComp, _ := ecs.Get(w, c, component.AudioComponent)
		assert.True(t, ov.Disabled)
		assert.True(t, sprite.Hidden)
		assert.True(t, audioComp.Requested("coin"))
	}

	overlap.Update(w)
	assert.Equal(t, 3, sess.Coins, "a collected coin never counts twice")

	ttl.Update(w)
	ttl.Update(w)
	for _, c := range coins {
		assert.False(t, ecs.IsAlive(w, c))
	}
	assert.True(t, ecs.IsAlive(w, far))
	assert.Empty(t, levelChangeRequests(w))
}

func TestDoorNeedsKey(t *testing.T) {
	w := ecs.NewWorld()
	sess := newTestSession()
	hero := newTestHero(t, w, 300, 525)
	newTestDoor(t, w, 300, 546)
	overlap := NewOverlapSystem(sess)

	body, _ := ecs.Get(w, hero, component.PhysicsBodyComponent)
	for i := 0; i < 1000; i++ {
		body.Touching.Down = true
		overlap.Update(w)
		require.Empty(t, levelChangeRequests(w), "frame %d", i)
	}

	sess.CollectKey()
	body.Touching.Down = false
	overlap.Update(w)
	assert.Empty(t, levelChangeRequests(w), "airborne hero does not enter")

	body.Touching.Down = true
	overlap.Update(w)
	reqs := levelChangeRequests(w)
	require.Len(t, reqs, 1)
	assert.Equal(t, component.LevelAdvance, reqs[0].Kind)
}

func TestKeyAndDoorSameFrame(t *testing.T) {
	w := ecs.NewWorld()
	sess := newTestSession()
	hero := newTestHero(t, w, 300, 525)
	key := newTestPickup(t, w, component.KeyTagComponent, "key", 300, 520)
	newTestDoor(t, w, 300, 546)

	body, _ := ecs.Get(w, hero, component.PhysicsBodyComponent)
	body.Touching.Down = true
	NewOverlapSystem(sess).Update(w)

	assert.True(t, sess.HasKey)
	audioComp, _ := ecs.Get(w, key, component.AudioComponent)
	assert.True(t, audioComp.Requested("key"))
	reqs := levelChangeRequests(w)
	require.Len(t, reqs, 1)
	assert.Equal(t, component.LevelAdvance, reqs[0].Kind)
}

func TestFallingHeroStompsEverySpiderTouched(t *testing.T) {
	w := ecs.NewWorld()
	sess := newTestSession()
	hero := newTestHero(t, w, 300, 300)
	a := newTestSpider(t, w, 290, 320)
	b := newTestSpider(t, w, 310, 320)
	NewEnemyLifecycleSystem().Update(w)

	body, _ := ecs.Get(w, hero, component.PhysicsBodyComponent)
	body.Velocity.Y = 150
	NewOverlapSystem(sess).Update(w)

	assert.Equal(t, -200.0, body.Velocity.Y)
	for _, e := range []ecs.Entity{a, b} {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent)
		assert.Equal(t, "dying", enemy.State)
	}
	assert.Equal(t, 0, sess.Health)
	assert.Empty(t, levelChangeRequests(w))
}

func TestSpiderHitRestartsOnce(t *testing.T) {
	w := ecs.NewWorld()
	sess := newTestSession()
	hero := newTestHero(t, w, 300, 300)
	newTestSpider(t, w, 290, 310)
	newTestSpider(t, w, 310, 310)
	NewEnemyLifecycleSystem().Update(w)

	NewOverlapSystem(sess).Update(w)

	assert.Equal(t, 2, sess.Health)
	audioComp, _ := ecs.Get(w, hero, component.AudioComponent)
	assert.True(t, audioComp.Requested("hurt"))
	reqs := levelChangeRequests(w)
	require.Len(t, reqs, 1)
	assert.Equal(t, component.LevelRestart, reqs[0].Kind)
	assert.Equal(t, "enemy", reqs[0].Reason)
}

func TestDyingSpiderIsHarmless(t *testing.T) {
	w := ecs.NewWorld()
	sess := newTestSession()
	newTestHero(t, w, 300, 300)
	spider := newTestSpider(t, w, 300, 310)
	NewEnemyLifecycleSystem().Update(w)
	require.True(t, KillEnemy(w, spider))

	NewOverlapSystem(sess).Update(w)
	assert.Equal(t, 0, sess.Health)
	assert.Empty(t, levelChangeRequests(w))
}

func TestRequestLevelChangeKeepsFirst(t *testing.T) {
	w := ecs.NewWorld()
	assert.True(t, RequestLevelChange(w, component.LevelAdvance, "door"))
	assert.False(t, RequestLevelChange(w, component.LevelRestart, "enemy"))

	reqs := levelChangeRequests(w)
	require.Len(t, reqs, 1)
	assert.Equal(t, component.LevelAdvance, reqs[0].Kind)
}
