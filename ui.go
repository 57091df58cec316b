package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"gadzooks/hud"
)

var (
	menuShade  = color.NRGBA{0, 0, 0, 160}
	buttonIdle = color.NRGBA{70, 70, 90, 255}
	buttonOver = color.NRGBA{100, 100, 130, 255}
	buttonDown = color.NRGBA{50, 50, 60, 255}
)

// PauseMenu is the overlay shown while the scene is paused.
type PauseMenu struct {
	ui *ebitenui.UI
}

func NewPauseMenu(onResume, onQuit func()) (*PauseMenu, error) {
	titleFace, err := hud.Face(32)
	if err != nil {
		return nil, err
	}
	buttonFace, err := hud.Face(18)
	if err != nil {
		return nil, err
	}

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(menuShade)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(column)

	column.AddChild(widget.NewText(
		widget.TextOpts.Text("PAUSED", titleFace, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	))
	column.AddChild(menuButton("Resume", buttonFace, onResume))
	column.AddChild(menuButton("Quit", buttonFace, onQuit))

	return &PauseMenu{ui: &ebitenui.UI{Container: root}}, nil
}

func menuButton(label string, face font.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    eimage.NewNineSliceColor(buttonIdle),
			Hover:   eimage.NewNineSliceColor(buttonOver),
			Pressed: eimage.NewNineSliceColor(buttonDown),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.TextPadding(widget.Insets{Left: 24, Right: 24, Top: 6, Bottom: 6}),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (m *PauseMenu) Update() {
	m.ui.Update()
}

func (m *PauseMenu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
