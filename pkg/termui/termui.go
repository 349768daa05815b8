// Package termui renders the game into a terminal with tcell. Each window
// slot is one terminal line and each column covers PixelsPerCol field pixels.
package termui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
	"github.com/golangdaddy/bogger/pkg/input"
	"github.com/golangdaddy/bogger/pkg/lane"
	"github.com/golangdaddy/bogger/pkg/score"
	"github.com/golangdaddy/bogger/pkg/world"
)

// Grid geometry.
const (
	PixelsPerCol = 8
	Cols         = config.FieldWidth / PixelsPerCol
	HUDLines     = 1
	Lines        = HUDLines + config.WindowRows + 1 // one footer line
)

// Theme colours each lane kind and entity kind.
type Theme struct {
	Grass, Road, Water  tcell.Color
	Player, Vehicle     tcell.Color
	Log, Turtle, Text   tcell.Color
	Fault, HUD, Highest tcell.Color
}

// DefaultTheme follows the sprite palette.
var DefaultTheme = Theme{
	Grass:   tcell.ColorDarkGreen,
	Road:    tcell.ColorDimGray,
	Water:   tcell.ColorNavy,
	Player:  tcell.ColorLawnGreen,
	Vehicle: tcell.ColorOrangeRed,
	Log:     tcell.ColorSaddleBrown,
	Turtle:  tcell.ColorMaroon,
	Text:    tcell.ColorWhite,
	Fault:   tcell.ColorFuchsia,
	HUD:     tcell.ColorBlack,
	Highest: tcell.ColorGold,
}

// LineFor maps a window slot to a terminal line; slot 0 is the bottom.
func LineFor(slot int) int {
	return HUDLines + config.WindowRows - 1 - slot
}

// ColFor maps a field x to a column.
func ColFor(x float64) int {
	return int(math.Floor(x / PixelsPerCol))
}

// SampleAt turns a terminal cell into a pointer sample at the cell centre,
// in field pixels, so taps steer the same way they do on the touchscreen.
func SampleAt(col, line int, touching bool) input.Sample {
	slot := HUDLines + config.WindowRows - 1 - line
	return input.Sample{
		Touching: touching,
		X:        float64(col*PixelsPerCol + PixelsPerCol/2),
		Y:        world.SlotY(slot) + config.TileHeight/2,
	}
}

// Painter implements world.Painter on a tcell screen.
type Painter struct {
	screen  tcell.Screen
	theme   Theme
	laneBg  map[int]tcell.Color
	faulted bool
}

// NewPainter draws onto s with the default theme.
func NewPainter(s tcell.Screen) *Painter {
	return &Painter{screen: s, theme: DefaultTheme, laneBg: make(map[int]tcell.Color)}
}

// Begin clears the frame.
func (p *Painter) Begin() {
	p.screen.Clear()
	p.faulted = false
	clear(p.laneBg)
}

// PaintLane fills the slot's line with the lane colour.
func (p *Painter) PaintLane(slot int, kind lane.Kind) {
	line := LineFor(slot)
	bg := p.laneColour(kind)
	p.laneBg[line] = bg
	st := tcell.StyleDefault.Background(bg)
	for x := 0; x < Cols; x++ {
		p.screen.SetContent(x, line, ' ', nil, st)
	}
}

// PaintEntity draws e's cells over its lane, wrapping at the right edge.
func (p *Painter) PaintEntity(slot int, e entity.Entity) {
	line := LineFor(slot)
	glyph, fg := p.glyph(e)
	st := tcell.StyleDefault.Foreground(fg).Background(p.laneBg[line])
	if e.Kind == entity.Player {
		st = st.Bold(true)
	}
	start := ColFor(e.X)
	n := max(1, int(e.Width/PixelsPerCol))
	for i := 0; i < n; i++ {
		col := ((start+i)%Cols + Cols) % Cols
		p.screen.SetContent(col, line, glyph, nil, st)
	}
}

// PaintFault marks the frame as unrenderable.
func (p *Painter) PaintFault() {
	p.faulted = true
}

// Faulted reports whether PaintFault was called since Begin.
func (p *Painter) Faulted() bool {
	return p.faulted
}

func (p *Painter) laneColour(kind lane.Kind) tcell.Color {
	switch kind {
	case lane.Grass:
		return p.theme.Grass
	case lane.Road:
		return p.theme.Road
	case lane.Water:
		return p.theme.Water
	}
	return p.theme.Fault
}

func (p *Painter) glyph(e entity.Entity) (rune, tcell.Color) {
	switch e.Kind {
	case entity.Player:
		return '@', p.theme.Player
	case entity.Vehicle:
		if e.Velocity < 0 {
			return '<', p.theme.Vehicle
		}
		return '>', p.theme.Vehicle
	case entity.Log:
		return '=', p.theme.Log
	case entity.Turtle:
		return 'o', p.theme.Turtle
	}
	return '?', p.theme.Fault
}

// DrawHUD writes the score line at the top and the help line at the bottom.
func (p *Painter) DrawHUD(b *score.Board, d config.Difficulty, help string) {
	current, high := b.Labels()
	hud := tcell.StyleDefault.Background(p.theme.HUD).Foreground(p.theme.Text)
	drawText(p.screen, 0, 0, spaces(Cols), hud)
	scoreStyle := hud
	if b.Beaten() {
		scoreStyle = hud.Foreground(p.theme.Highest).Bold(true)
	}
	drawText(p.screen, 0, 0, current, scoreStyle)
	drawText(p.screen, Cols-len(high), 0, high, hud)

	footer := fmt.Sprintf("%s  %s", d, help)
	drawText(p.screen, 0, Lines-1, spaces(Cols), hud)
	drawText(p.screen, 0, Lines-1, footer, hud)

	if p.faulted {
		drawCentered(p.screen, Cols/2, Lines/2, "LANE FAULT", hud.Foreground(p.theme.Fault))
	}
}

// DrawGameOver writes the end-of-run banner.
func (p *Painter) DrawGameOver(res score.Result, title, hint string) {
	st := tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(p.theme.Text).Bold(true)
	y0 := Lines/2 - 1
	for dy := 0; dy < 3; dy++ {
		drawText(p.screen, 0, y0+dy, spaces(Cols), st)
	}
	line := fmt.Sprintf("%s  %0*d", title, config.ScoreDigits, res.Final)
	if res.NewHighMark {
		line += " NEW HIGH"
	}
	drawCentered(p.screen, Cols/2, y0, line, st)
	drawCentered(p.screen, Cols/2, y0+2, hint, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
