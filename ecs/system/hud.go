package system

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/session"
)

const hudTextScale = 2.0

// HUDSystem mirrors the session onto the coin counter, key icon and hearts.
// With a nil face the counter text is tracked but never rasterized.
type HUDSystem struct {
	session *session.Session
	face    text.Face
}

func NewHUDSystem(sess *session.Session, face text.Face) *HUDSystem {
	return &HUDSystem{session: sess, face: face}
}

func (s *HUDSystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.CoinCounterComponent, func(e ecs.Entity, counter *component.CoinCounter) {
		next := CoinCounterText(s.session.Coins)
		if counter.RenderedText == next {
			return
		}
		counter.RenderedText = next
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok && s.face != nil {
			sprite.Image = s.renderText(next)
			sprite.UseSource = false
		}
	})

	ecs.ForEach(w, component.KeyIconComponent, func(e ecs.Entity, icon *component.KeyIcon) {
		icon.Held = s.session.HasKey
		frame := 0
		if icon.Held {
			frame = 1
		}
		setSheetFrame(w, e, frame, assets.KeyIconW, assets.KeyIconH)
	})

	ecs.ForEach(w, component.HeartsIconComponent, func(e ecs.Entity, hearts *component.HeartsIcon) {
		hearts.Frame = s.session.HeartsFrame()
		setSheetFrame(w, e, hearts.Frame, assets.HeartsFrameW, assets.HeartsFrameH)
	})
}

func CoinCounterText(coins int) string {
	return fmt.Sprintf("x%d", coins)
}

func setSheetFrame(w *ecs.World, e ecs.Entity, frame, fw, fh int) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent)
	if !ok {
		return
	}
	sprite.Source = image.Rect(frame*fw, 0, (frame+1)*fw, fh)
	sprite.UseSource = true
}

func (s *HUDSystem) renderText(str string) *ebiten.Image {
	tw, th := text.Measure(str, s.face, 0)
	img := ebiten.NewImage(int(math.Ceil(tw*hudTextScale))+1, int(math.Ceil(th*hudTextScale))+1)
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(img, str, s.face, op)
	return img
}
