package entity

import (
	"fmt"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	hudOriginX = 10.0
	hudOriginY = 10.0
	hudSpacing = 7.0
	heartsHUDX = 820.0
)

// HUD holds the entities making up the heads-up display.
type HUD struct {
	CoinIcon    ecs.Entity
	CoinCounter ecs.Entity
	KeyIcon     ecs.Entity
	Hearts      ecs.Entity
}

// NewHUD lays out the key icon, the coin icon and counter, and the hearts
// along the top of the screen.
func NewHUD(w *ecs.World, lib *assets.Library) (*HUD, error) {
	hud := &HUD{}
	var err error

	keyX := hudOriginX
	hud.KeyIcon, err = newHUDSprite(w, lib, "icon:key", keyX, hudOriginY+assets.KeyIconH/2.0, 0, 0.5)
	if err != nil {
		return nil, fmt.Errorf("hud: key icon: %w", err)
	}
	if err := ecs.Add(w, hud.KeyIcon, component.KeyIconComponent, &component.KeyIcon{}); err != nil {
		return nil, fmt.Errorf("hud: key icon: %w", err)
	}

	coinX := keyX + assets.KeyIconW + hudSpacing
	hud.CoinIcon, err = newHUDSprite(w, lib, "icon:coin", coinX, hudOriginY, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("hud: coin icon: %w", err)
	}

	hud.CoinCounter, err = newHUDSprite(w, lib, "", coinX+assets.CoinFrameW, hudOriginY+assets.CoinFrameH/2.0, 0, 0.5)
	if err != nil {
		return nil, fmt.Errorf("hud: coin counter: %w", err)
	}
	if err := ecs.Add(w, hud.CoinCounter, component.CoinCounterComponent, &component.CoinCounter{}); err != nil {
		return nil, fmt.Errorf("hud: coin counter: %w", err)
	}

	hud.Hearts, err = newHUDSprite(w, lib, "icon:heart", heartsHUDX+hudOriginX, hudOriginY, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("hud: hearts: %w", err)
	}
	if err := ecs.Add(w, hud.Hearts, component.HeartsIconComponent, &component.HeartsIcon{}); err != nil {
		return nil, fmt.Errorf("hud: hearts: %w", err)
	}

	return hud, nil
}

func newHUDSprite(w *ecs.World, lib *assets.Library, image string, x, y, anchorX, anchorY float64) (ecs.Entity, error) {
	img, err := lib.Image(image)
	if err != nil {
		return 0, err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScreenSpaceComponent, &component.ScreenSpace{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: img, AnchorX: anchorX, AnchorY: anchorY}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerHUD}); err != nil {
		return 0, err
	}
	return e, nil
}
