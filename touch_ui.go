package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const touchButtonSize = 72

var (
	colorTouch     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	colorTouchHeld = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

// TouchControls are the on-screen left, right and jump buttons. Handlers
// are bound once here; the input system polls MoveX and JumpPressed each
// frame.
type TouchControls struct {
	ui *ebitenui.UI

	left, right bool
	jump        bool
}

func NewTouchControls(face ebtext.Face) *TouchControls {
	tc := &TouchControls{}

	moves := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: 24, Bottom: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	moves.AddChild(touchButton("<", face, &tc.left, nil))
	moves.AddChild(touchButton(">", face, &tc.right, nil))

	jump := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Right: 24, Bottom: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	jump.AddChild(touchButton("^", face, nil, &tc.jump))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(moves)
	root.AddChild(jump)
	tc.ui = &ebitenui.UI{Container: root}
	return tc
}

// touchButton sets *held while the button is down and raises *pressed on
// the press edge. Either pointer may be nil.
func touchButton(label string, face ebtext.Face, held, pressed *bool) *widget.Button {
	img := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colorTouch),
		Hover:   imageui.NewNineSliceColor(colorTouch),
		Pressed: imageui.NewNineSliceColor(colorTouchHeld),
	}
	return widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: colorLabel}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(touchButtonSize, touchButtonSize)),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			if held != nil {
				*held = true
			}
			if pressed != nil {
				*pressed = true
			}
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			if held != nil {
				*held = false
			}
		}),
	)
}

func (tc *TouchControls) Update() {
	tc.ui.Update()
}

func (tc *TouchControls) Draw(screen *ebiten.Image) {
	tc.ui.Draw(screen)
}

// MoveX reports the held direction. Left wins when both are held, as on
// the keyboard.
func (tc *TouchControls) MoveX() float64 {
	switch {
	case tc.left:
		return -1
	case tc.right:
		return 1
	default:
		return 0
	}
}

// JumpPressed reports a jump press since the last call.
func (tc *TouchControls) JumpPressed() bool {
	j := tc.jump
	tc.jump = false
	return j
}
