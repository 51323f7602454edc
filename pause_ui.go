package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
)

var (
	colorPanel      = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	colorButton     = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	colorButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	colorLabel      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// NewPauseUI builds the centered pause menu: Resume, Restart level and
// New game. Restarting from the menu costs no health.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(colorPanel)
	face := g.face

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, colorLabel),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(menuButton("Resume", face, func() { g.paused = false }))
	panel.AddChild(menuButton("Restart level", face, g.restartLevel))
	panel.AddChild(menuButton("New game", face, g.newGame))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func menuButton(label string, face ebtext.Face, onClick func()) *widget.Button {
	img := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colorButton),
		Hover:   imageui.NewNineSliceColor(colorButtonDown),
		Pressed: imageui.NewNineSliceColor(colorButtonDown),
	}
	return widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: colorLabel}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
