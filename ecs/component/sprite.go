package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image (or its Source sub-rectangle) so that the point
// (AnchorX*w, AnchorY*h) of the frame lands on the entity transform.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	AnchorX    float64
	AnchorY    float64
	FacingLeft bool
	Hidden     bool
}

var SpriteComponent = NewComponent[Sprite]()
