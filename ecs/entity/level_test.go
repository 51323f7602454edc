package entity

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLevelCounts(t *testing.T) {
	for i := 0; i < levels.Count; i++ {
		spec, err := levels.Load(i)
		require.NoError(t, err)

		w := ecs.NewWorld()
		lvl, err := BuildLevel(w, spec, nil)
		require.NoError(t, err, "level %d", i)

		assert.Len(t, lvl.Platforms, len(spec.Platforms))
		assert.Len(t, lvl.Walls, 2*len(spec.Platforms))
		assert.Len(t, lvl.Spiders, len(spec.Spiders))
		assert.Len(t, lvl.Coins, len(spec.Coins))
		assert.Equal(t, spec.Key != nil, lvl.Key.Valid())

		assert.Equal(t, 1, ecs.Count(w, component.HeroTagComponent))
		assert.Equal(t, 1, ecs.Count(w, component.DoorTagComponent))
		assert.Equal(t, len(spec.Coins), ecs.Count(w, component.CoinTagComponent))
		assert.Equal(t, len(spec.Spiders), ecs.Count(w, component.EnemyTagComponent))

		hero, _ := ecs.Get(w, lvl.Hero, component.TransformComponent)
		assert.Equal(t, spec.Hero.X, hero.X)
		assert.Equal(t, spec.Hero.Y, hero.Y)
	}
}

func TestBuildLevelRejectsInvalidSpec(t *testing.T) {
	cases := map[string]*levels.Spec{
		"no hero": {Door: &levels.Point{X: 1, Y: 1}},
		"no door": {Hero: &levels.Point{X: 1, Y: 1}},
		"unknown image": {
			Hero:      &levels.Point{X: 1, Y: 1},
			Door:      &levels.Point{X: 1, Y: 1},
			Platforms: []levels.Platform{{X: 0, Y: 0, Image: "lava"}},
		},
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildLevel(w, spec, nil)
			require.Error(t, err)
			assert.Empty(t, ecs.Entities(w))
		})
	}
}

func TestPlatformBodyAndWalls(t *testing.T) {
	w := ecs.NewWorld()
	e, walls, err := NewPlatform(w, nil, levels.Platform{X: 100, Y: 300, Image: "grass:4x1"})
	require.NoError(t, err)

	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.True(t, ok)
	assert.Equal(t, 168.0, body.Width)
	assert.Equal(t, 42.0, body.Height)
	assert.True(t, body.Static)

	left, _ := ecs.Get(w, walls[0], component.TransformComponent)
	right, _ := ecs.Get(w, walls[1], component.TransformComponent)
	assert.Equal(t, 89.5, left.X)
	assert.Equal(t, 279.0, left.Y)
	assert.Equal(t, 278.5, right.X)
	assert.Equal(t, 279.0, right.Y)

	layer, _ := ecs.Get(w, walls[0], component.CollisionLayerComponent)
	assert.Equal(t, component.LayerBoundaryWall, layer.Category)
	assert.Equal(t, component.LayerEnemy, layer.Mask)
}

func TestSpiderStartsWalkingRight(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewSpiderAt(w, nil, levels.Point{X: 600, Y: 530})
	require.NoError(t, err)

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	enemy, _ := ecs.Get(w, e, component.EnemyComponent)
	assert.Equal(t, enemy.Speed, body.Velocity.X)
	assert.True(t, ecs.Has(w, e, component.LifecycleComponent))
	assert.Empty(t, enemy.State)
}

func TestHUDLayout(t *testing.T) {
	w := ecs.NewWorld()
	hud, err := NewHUD(w, nil)
	require.NoError(t, err)

	for _, e := range []ecs.Entity{hud.KeyIcon, hud.CoinIcon, hud.CoinCounter, hud.Hearts} {
		layer, ok := ecs.Get(w, e, component.RenderLayerComponent)
		require.True(t, ok)
		assert.Equal(t, component.LayerHUD, layer.Index)
	}

	hearts, _ := ecs.Get(w, hud.Hearts, component.TransformComponent)
	assert.Equal(t, 830.0, hearts.X)
	assert.True(t, ecs.Has(w, hud.CoinCounter, component.CoinCounterComponent))
}
