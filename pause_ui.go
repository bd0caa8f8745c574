package main

import (
	"image/color"

	"github.com/milk9111/pong/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	menuPanelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	menuButtonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	menuTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// pauseMenu builds widgets sharing one face and one button skin.
type pauseMenu struct {
	face   ebtext.Face
	button *widget.ButtonImage
}

func (m *pauseMenu) label(s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &m.face, menuTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (m *pauseMenu) action(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(m.button),
		widget.ButtonOpts.Text(s, &m.face, &widget.ButtonTextColor{Idle: menuTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
	)
}

// NewPauseUI builds the menu drawn over the frozen court. Quit goes through
// the loop so the game ends the same way it does on Escape.
func NewPauseUI(g *Game) *ebitenui.UI {
	btnImg := imageui.NewNineSliceColor(menuButtonColor)
	m := &pauseMenu{
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		button: &widget.ButtonImage{Idle: btnImg, Pressed: btnImg},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(menuPanelColor)),
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
	panel.AddChild(m.label("Paused"))
	panel.AddChild(m.label("P to resume, Esc to quit"))
	panel.AddChild(m.action("Resume", func() { g.setPaused(false) }))
	panel.AddChild(m.action("Quit", func() {
		g.loop.Quit()
		g.setPaused(false)
	}))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
