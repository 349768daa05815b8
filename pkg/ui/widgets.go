package ui

import (
	"image/color"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/input"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	Background = color.RGBA{15, 20, 35, 255}
	Gold       = color.RGBA{255, 200, 50, 255}
	Pale       = color.RGBA{180, 180, 200, 255}
	White      = color.RGBA{255, 255, 255, 255}

	buttonFill     = color.RGBA{40, 55, 90, 255}
	buttonSelected = color.RGBA{70, 100, 160, 255}
	buttonEdge     = color.RGBA{150, 200, 255, 255}
)

// PollPointer reads the first touch, or the left mouse button when there is
// no touchscreen. Coordinates are in field pixels.
func PollPointer() input.Sample {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return input.Sample{Touching: true, X: float64(x), Y: float64(y)}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return input.Sample{Touching: true, X: float64(x), Y: float64(y)}
	}
	return input.Sample{}
}

// Button is a labelled rectangle in field pixels.
type Button struct {
	X, Y, W, H float64
	Label      string
}

// ReturnButton sits in the top-left corner of every screen but the menu.
var ReturnButton = Button{
	X: config.ReturnX, Y: config.ReturnY,
	W: config.ReturnW, H: config.ReturnH,
	Label: "Return",
}

// Contains reports whether (x,y) is inside the button, edges included.
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Draw paints the button, highlighted when selected.
func (b Button) Draw(screen *ebiten.Image, selected bool) {
	fill := buttonFill
	if selected {
		fill = buttonSelected
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, buttonEdge, false)

	w := text.Advance(b.Label, face)
	DrawText(screen, b.Label, b.X+(b.W-w)/2, b.Y+(b.H-face.Metrics().HAscent)/2, 1, White)
}

// DrawText draws s with its top-left corner at (x,y).
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawCentered draws s horizontally centred on the field at height y.
func DrawCentered(screen *ebiten.Image, s string, y, scale float64, clr color.Color) {
	w := text.Advance(s, face) * scale
	DrawText(screen, s, (config.FieldWidth-w)/2, y, scale, clr)
}

// LineHeight is the advance between lines of body text.
func LineHeight() float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + 2
}

// tapper turns pointer polling into presses for a screen. It starts held so
// the touch that opened the screen does not also press something on it.
type tapper struct {
	taps input.Tracker
}

func newTapper() tapper {
	var t tapper
	t.taps.Hold()
	return t
}

func (t *tapper) poll() (input.Sample, bool) {
	s := PollPointer()
	return s, t.taps.Pressed(s)
}
