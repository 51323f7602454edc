package entity

import (
	"fmt"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/sirupsen/logrus"
)

// Boundary wall size. Walls sit just outside each platform edge and stop
// spiders from walking off.
const (
	wallWidth  = 21.0
	wallHeight = 42.0
)

// LevelEntities are the entities BuildLevel created, grouped by role.
type LevelEntities struct {
	Background ecs.Entity
	Platforms  []ecs.Entity
	Walls      []ecs.Entity
	Hero       ecs.Entity
	Spiders    []ecs.Entity
	Coins      []ecs.Entity
	Door       ecs.Entity
	Key        ecs.Entity
	Bounds     ecs.Entity
	HUD        *HUD
}

// BuildLevel populates w from a level record. The record is validated first
// and nothing is created when it is invalid.
func BuildLevel(w *ecs.World, spec *levels.Spec, lib *assets.Library) (*LevelEntities, error) {
	if w == nil {
		return nil, fmt.Errorf("build level: world is nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	out := &LevelEntities{}
	var err error

	if out.Background, err = newBackground(w, lib); err != nil {
		return nil, fmt.Errorf("build level: background: %w", err)
	}

	for i, p := range spec.Platforms {
		platform, walls, err := NewPlatform(w, lib, p)
		if err != nil {
			return nil, fmt.Errorf("build level: platform %d: %w", i, err)
		}
		out.Platforms = append(out.Platforms, platform)
		out.Walls = append(out.Walls, walls[0], walls[1])
	}

	if out.Hero, err = newAt(w, lib, "hero.yaml", *spec.Hero); err != nil {
		return nil, fmt.Errorf("build level: hero: %w", err)
	}

	for i, p := range spec.Spiders {
		spider, err := NewSpiderAt(w, lib, p)
		if err != nil {
			return nil, fmt.Errorf("build level: spider %d: %w", i, err)
		}
		out.Spiders = append(out.Spiders, spider)
	}

	for i, p := range spec.Coins {
		coin, err := newAt(w, lib, "coin.yaml", p)
		if err != nil {
			return nil, fmt.Errorf("build level: coin %d: %w", i, err)
		}
		out.Coins = append(out.Coins, coin)
	}

	if out.Door, err = newAt(w, lib, "door.yaml", *spec.Door); err != nil {
		return nil, fmt.Errorf("build level: door: %w", err)
	}

	if spec.Key != nil {
		if out.Key, err = newAt(w, lib, "key.yaml", *spec.Key); err != nil {
			return nil, fmt.Errorf("build level: key: %w", err)
		}
	}

	out.Bounds = ecs.CreateEntity(w)
	if err := ecs.Add(w, out.Bounds, component.LevelBoundsComponent, &component.LevelBounds{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}); err != nil {
		return nil, fmt.Errorf("build level: bounds: %w", err)
	}

	if out.HUD, err = NewHUD(w, lib); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"platforms": len(out.Platforms),
		"spiders":   len(out.Spiders),
		"coins":     len(out.Coins),
		"key":       out.Key.Valid(),
	}).Debug("level built")

	return out, nil
}

// NewPlatform builds a platform with its top-left corner at p and the two
// boundary walls flanking it.
func NewPlatform(w *ecs.World, lib *assets.Library, p levels.Platform) (ecs.Entity, [2]ecs.Entity, error) {
	var walls [2]ecs.Entity

	width, height, ok := levels.PlatformSize(p.Image)
	if !ok {
		return 0, walls, fmt.Errorf("%q: %w", p.Image, levels.ErrUnknownPlatformImage)
	}
	e, err := newAt(w, lib, "platform.yaml", levels.Point{X: p.X, Y: p.Y})
	if err != nil {
		return 0, walls, err
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		img, err := lib.Image(p.Image)
		if err != nil {
			return 0, walls, err
		}
		sprite.Image = img
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		body.Width = float64(width)
		body.Height = float64(height)
		body.OffsetX = float64(width) / 2
		body.OffsetY = float64(height) / 2
	}

	// The left wall's bottom-right corner touches the platform's top-left
	// corner; the right wall mirrors it on the other side.
	left := levels.Point{X: p.X - wallWidth/2, Y: p.Y - wallHeight/2}
	right := levels.Point{X: p.X + float64(width) + wallWidth/2, Y: p.Y - wallHeight/2}
	for i, at := range []levels.Point{left, right} {
		if walls[i], err = newAt(w, lib, "enemy_wall.yaml", at); err != nil {
			return 0, walls, fmt.Errorf("wall: %w", err)
		}
	}
	return e, walls, nil
}

// NewSpiderAt builds a spider at p, already walking right.
func NewSpiderAt(w *ecs.World, lib *assets.Library, p levels.Point) (ecs.Entity, error) {
	e, err := newAt(w, lib, "spider.yaml", p)
	if err != nil {
		return 0, err
	}
	enemy, ok := ecs.Get(w, e, component.EnemyComponent)
	if !ok {
		return e, nil
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		body.Velocity.X = enemy.Speed
	}
	return e, nil
}

func newAt(w *ecs.World, lib *assets.Library, prefab string, p levels.Point) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab, lib)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, p.X, p.Y); err != nil {
		return 0, fmt.Errorf("%s: set transform: %w", prefab, err)
	}
	return e, nil
}

func newBackground(w *ecs.World, lib *assets.Library) (ecs.Entity, error) {
	img, err := lib.Image("background")
	if err != nil {
		return 0, err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundTagComponent, &component.BackgroundTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: img}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerBackground}); err != nil {
		return 0, err
	}
	return e, nil
}
