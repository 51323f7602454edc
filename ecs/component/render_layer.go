package component

// Draw order, lowest first.
const (
	LayerBackground = 0
	LayerPlatforms  = 10
	LayerDecoration = 20
	LayerPickups    = 30
	LayerActors     = 40
	LayerHeroSprite = 50
	LayerHUD        = 1000
)

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
