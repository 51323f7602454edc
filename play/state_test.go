package play

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, level int) *State {
	t.Helper()
	st, err := New(level, Options{})
	require.NoError(t, err)
	return st
}

// teleportHero moves the hero's physics body, which the next step writes
// back to its transform.
func teleportHero(t *testing.T, st *State, x, y, vy float64) {
	t.Helper()
	hero, ok := st.HeroEntity()
	require.True(t, ok)
	body, ok := ecs.Get(st.World(), hero, component.PhysicsBodyComponent)
	require.True(t, ok)
	require.NotNil(t, body.Body, "hero body is created on the first update")
	body.Body.SetPosition(cp.Vector{X: x, Y: y})
	body.Velocity = cp.Vector{Y: vy}
}

func TestNewBuildsRequestedLevel(t *testing.T) {
	st := newTestState(t, 3)
	assert.Equal(t, 1, st.Session().Level)
	assert.Equal(t, 1200.0, st.Physics().Gravity())
	assert.True(t, st.Level().Hero.Valid())
	assert.Len(t, st.Level().Spiders, 3)
}

func TestHeroSettlesOnGround(t *testing.T) {
	st := newTestState(t, 0)
	for i := 0; i < 30; i++ {
		require.NoError(t, st.Update())
	}

	hero, _ := st.HeroEntity()
	tr, _ := ecs.Get(st.World(), hero, component.TransformComponent)
	body, _ := ecs.Get(st.World(), hero, component.PhysicsBodyComponent)
	anim, _ := ecs.Get(st.World(), hero, component.AnimationComponent)
	assert.InDelta(t, 525.0, tr.Y, 1.0)
	assert.True(t, body.Touching.Down)
	assert.Equal(t, system.AnimStop, anim.Current)
}

func TestSpiderHitRestartsWithPenalty(t *testing.T) {
	st := newTestState(t, 0)
	st.Session().Health = 2
	require.NoError(t, st.Update())

	spider := st.Level().Spiders[0]
	sp, ok := ecs.Get(st.World(), spider, component.TransformComponent)
	require.True(t, ok)
	oldWorld := st.World()

	teleportHero(t, st, sp.X, sp.Y-5, -100)
	require.NoError(t, st.Update())

	assert.NotSame(t, oldWorld, st.World())
	assert.Equal(t, 4, st.Session().Health)
	assert.Equal(t, 0, st.Session().Level)
	assert.Equal(t, 0, st.Session().Coins)

	hero, _ := st.HeroEntity()
	tr, _ := ecs.Get(st.World(), hero, component.TransformComponent)
	assert.Equal(t, 21.0, tr.X)
	assert.Equal(t, 525.0, tr.Y)
}

func TestCoinPickupCounts(t *testing.T) {
	st := newTestState(t, 0)
	require.NoError(t, st.Update())

	teleportHero(t, st, 441, 399, 0)
	for i := 0; i < 5; i++ {
		require.NoError(t, st.Update())
	}
	assert.Equal(t, 1, st.Session().Coins)
	assert.Equal(t, 6, ecs.Count(st.World(), component.CoinTagComponent))
}

func TestDoorWithKeyAdvances(t *testing.T) {
	st := newTestState(t, 0)
	require.NoError(t, st.Update())

	teleportHero(t, st, 169, 525, 0)
	for i := 0; i < 10; i++ {
		require.NoError(t, st.Update())
	}
	require.Equal(t, 0, st.Session().Level, "door is locked without the key")

	st.Session().HasKey = true
	for i := 0; i < 10 && st.Session().Level == 0; i++ {
		require.NoError(t, st.Update())
	}
	assert.Equal(t, 1, st.Session().Level)
	assert.False(t, st.Session().HasKey)
	assert.Len(t, st.Level().Coins, 9)
}

func TestAdvanceCyclesThroughLevels(t *testing.T) {
	st := newTestState(t, 0)
	for n := 1; n <= 5; n++ {
		system.RequestLevelChange(st.World(), component.LevelAdvance, "test")
		require.NoError(t, st.Update())
		assert.Equal(t, n%2, st.Session().Level)
	}
	assert.Equal(t, 0, st.Session().Health)
}

func TestManualRestartAndNewGame(t *testing.T) {
	st := newTestState(t, 1)
	st.Session().Health = 2
	st.Session().Coins = 3
	st.Session().HasKey = true

	require.NoError(t, st.Restart())
	assert.Equal(t, 2, st.Session().Health)
	assert.Equal(t, 0, st.Session().Coins)
	assert.Equal(t, 1, st.Session().Level)

	require.NoError(t, st.NewGame())
	assert.Equal(t, 0, st.Session().Health)
	assert.Equal(t, 0, st.Session().Level)
}

func TestReloadStartsLevelOver(t *testing.T) {
	st := newTestState(t, 0)
	st.Session().Coins = 4
	st.Session().HasKey = true
	st.Session().Health = 2
	old := st.World()

	require.NoError(t, st.Reload())
	assert.NotSame(t, old, st.World())
	assert.Zero(t, st.Session().Coins, "coins respawn, so the count starts over")
	assert.False(t, st.Session().HasKey)
	assert.Equal(t, 2, st.Session().Health)
	assert.Len(t, st.Level().Coins, 7)
}

func TestFailedBuildLeavesSessionAlone(t *testing.T) {
	broken := errors.New("level file unreadable")
	st, err := New(0, Options{LoadLevel: func(index int) (*levels.Spec, error) {
		if index == 1 {
			return nil, broken
		}
		return levels.Load(index)
	}})
	require.NoError(t, err)
	require.NoError(t, st.Update())

	st.Session().Coins = 3
	st.Session().HasKey = true
	old := st.World()

	system.RequestLevelChange(st.World(), component.LevelAdvance, "door")
	require.ErrorIs(t, st.Update(), broken)

	assert.Same(t, old, st.World())
	assert.Equal(t, 0, st.Session().Level)
	assert.Equal(t, 3, st.Session().Coins)
	assert.True(t, st.Session().HasKey)
	_, pending := ecs.First(st.World(), component.LevelChangeRequestComponent)
	assert.False(t, pending, "the failed request is dropped")

	require.NoError(t, st.Update(), "the old world keeps running")

	require.NoError(t, st.Restart())
	assert.Zero(t, st.Session().Coins)
	assert.Equal(t, 0, st.Session().Level)
}
