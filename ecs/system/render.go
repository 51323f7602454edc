package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints every visible sprite in render-layer order. Ties are broken
// by entity so that the order is stable between frames.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range DrawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Hidden || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}
		bounds := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.AnchorX*float64(bounds.Dx()), -s.AnchorY*float64(bounds.Dy()))

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FacingLeft && !ecs.Has(w, e, component.ScreenSpaceComponent) {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X, t.Y)

		screen.DrawImage(img, op)
	}
}

// DrawOrder lists the entities with a sprite and a transform, lowest render
// layer first.
func DrawOrder(w *ecs.World) []ecs.Entity {
	var entities []ecs.Entity
	ecs.ForEach2(w, component.SpriteComponent, component.TransformComponent, func(e ecs.Entity, _ *component.Sprite, _ *component.Transform) {
		entities = append(entities, e)
	})

	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}
