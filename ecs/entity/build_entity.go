package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

type buildContext struct {
	PrefabPath string
	Lib        *assets.Library
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"hero_tag":          addHeroTag,
	"enemy_tag":         addEnemyTag,
	"coin_tag":          addCoinTag,
	"key_tag":           addKeyTag,
	"door_tag":          addDoorTag,
	"platform_tag":      addPlatformTag,
	"boundary_wall_tag": addBoundaryWallTag,
	"hero":              addHero,
	"enemy":             addEnemy,
	"input":             addInput,
	"transform":         addTransform,
	"sprite":            addSprite,
	"animation":         addAnimation,
	"render_layer":      addRenderLayer,
	"physics_body":      addPhysicsBody,
	"collision_layer":   addCollisionLayer,
	"overlap":           addOverlap,
	"bob":               addBob,
	"audio":             addAudio,
}

var componentBuildOrder = []string{
	"hero_tag",
	"enemy_tag",
	"coin_tag",
	"key_tag",
	"door_tag",
	"platform_tag",
	"boundary_wall_tag",
	"hero",
	"enemy",
	"input",
	"transform",
	"sprite",
	"animation",
	"render_layer",
	"physics_body",
	"collision_layer",
	"overlap",
	"bob",
	"audio",
}

// BuildEntity creates an entity from a prefab file. Images and sounds come
// from lib; a nil lib builds the entity without them.
func BuildEntity(w *ecs.World, prefabPath string, lib *assets.Library) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Lib: lib}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	if len(remaining) > 0 {
		rest := make([]string, 0, len(remaining))
		for name := range remaining {
			rest = append(rest, name)
		}
		sort.Strings(rest)
		names = append(names, rest...)
	}

	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent, t)
}

func addHeroTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HeroTagComponent, &component.HeroTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent, &component.EnemyTag{})
}

func addCoinTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CoinTagComponent, &component.CoinTag{})
}

func addKeyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.KeyTagComponent, &component.KeyTag{})
}

func addDoorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.DoorTagComponent, &component.DoorTag{})
}

func addPlatformTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlatformTagComponent, &component.PlatformTag{})
}

func addBoundaryWallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BoundaryWallTagComponent, &component.BoundaryWallTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, &component.Input{})
}

type heroSpec = prefabs.HeroComponentSpec

func addHero(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[heroSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hero spec: %w", err)
	}
	return ecs.Add(w, e, component.HeroComponent, &component.Hero{
		Speed:       spec.Speed,
		JumpSpeed:   spec.JumpSpeed,
		BounceSpeed: spec.BounceSpeed,
	})
}

type enemySpec = prefabs.EnemyComponentSpec

// addEnemy also attaches the lifecycle table decoded from the enemy's
// script. Enemies start moving right.
func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[enemySpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	if spec.Lifecycle == "" {
		return fmt.Errorf("enemy: missing lifecycle script")
	}
	lc, err := LoadLifecycle(spec.Lifecycle)
	if err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyComponent, &component.Enemy{Speed: spec.Speed}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.LifecycleComponent, lc)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		ScaleX: spec.ScaleX,
		ScaleY: spec.ScaleY,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	img, err := ctx.Lib.Image(spec.Image)
	if err != nil {
		return fmt.Errorf("load sprite image %q: %w", spec.Image, err)
	}
	return ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Image:   img,
		AnchorX: spec.AnchorX,
		AnchorY: spec.AnchorY,
		Hidden:  spec.Hidden,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := ctx.Lib.Image(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if len(def.Frames) == 0 {
			return fmt.Errorf("animation %q has no frames", name)
		}
		defs[name] = component.AnimationDef{
			Frames: append([]int(nil), def.Frames...),
			FPS:    def.FPS,
			Loop:   def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("initial animation %q is not defined", spec.Current)
	}

	anim := &component.Animation{
		Sheet:  sheet,
		FrameW: spec.FrameW,
		FrameH: spec.FrameH,
		Defs:   defs,
	}
	anim.Play(spec.Current)
	return ecs.Add(w, e, component.AnimationComponent, anim)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.Index})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:              spec.Width,
		Height:             spec.Height,
		Mass:               spec.Mass,
		OffsetX:            spec.OffsetX,
		OffsetY:            spec.OffsetY,
		Static:             spec.Static,
		Gravity:            spec.Gravity,
		CollideWorldBounds: spec.CollideWorldBounds,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

var collisionLayerNames = map[string]uint32{
	"platform":      component.LayerPlatform,
	"boundary_wall": component.LayerBoundaryWall,
	"hero":          component.LayerHero,
	"enemy":         component.LayerEnemy,
	"world_bounds":  component.LayerWorldBounds,
}

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	category, err := layerBits(spec.Category)
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}
	mask, err := layerBits(spec.Mask)
	if err != nil {
		return fmt.Errorf("mask: %w", err)
	}
	return ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{Category: category, Mask: mask})
}

func layerBits(names []string) (uint32, error) {
	var bits uint32
	for _, name := range names {
		bit, ok := collisionLayerNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown collision layer %q", name)
		}
		bits |= bit
	}
	return bits, nil
}

type overlapSpec = prefabs.OverlapComponentSpec

func addOverlap(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[overlapSpec](raw)
	if err != nil {
		return fmt.Errorf("decode overlap spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("overlap box must have a positive size")
	}
	return ecs.Add(w, e, component.OverlapComponent, &component.Overlap{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type bobSpec = prefabs.BobComponentSpec

func addBob(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bobSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bob spec: %w", err)
	}
	return ecs.Add(w, e, component.BobComponent, &component.Bob{
		Offset:   spec.Offset,
		Distance: spec.Distance,
		Period:   spec.PeriodFrames,
	})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponent(ctx.Lib, spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	for _, name := range spec.Autoplay {
		comp.Request(name)
	}
	return ecs.Add(w, e, component.AudioComponent, comp)
}
