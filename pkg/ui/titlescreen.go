package ui

import (
	"math"
	"time"

	"github.com/golangdaddy/bogger/pkg/data"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuChoice is a main menu entry.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuStats
	MenuInstructions
	MenuCredits
)

// TitleScreen is the main menu.
type TitleScreen struct {
	startTime time.Time
	buttons   []Button
	selected  int
	tapper    tapper
	onChoice  func(MenuChoice)
}

// NewTitleScreen creates the main menu; onChoice runs when an entry is picked.
func NewTitleScreen(onChoice func(MenuChoice)) *TitleScreen {
	ts := &TitleScreen{
		startTime: time.Now(),
		tapper:    newTapper(),
		onChoice:  onChoice,
	}
	for i, label := range data.MenuLabels {
		ts.buttons = append(ts.buttons, Button{
			X: 100, Y: 96 + float64(i)*32, W: 120, H: 24,
			Label: label,
		})
	}
	return ts
}

// Update handles input for the menu
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ts.selected = (ts.selected + len(ts.buttons) - 1) % len(ts.buttons)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ts.selected = (ts.selected + 1) % len(ts.buttons)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ts.choose(ts.selected)
		return nil
	}

	s, pressed := ts.tapper.poll()
	if !pressed {
		return nil
	}
	for i, b := range ts.buttons {
		if b.Contains(s.X, s.Y) {
			ts.choose(i)
			return nil
		}
	}
	return nil
}

func (ts *TitleScreen) choose(i int) {
	ts.selected = i
	if ts.onChoice != nil {
		ts.onChoice(MenuChoice(i))
	}
}

// Draw renders the menu
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	elapsed := time.Since(ts.startTime).Seconds()
	brightness := 0.85 + 0.15*math.Sin(elapsed*2)
	title := Gold
	title.R = uint8(float64(title.R) * brightness)
	title.G = uint8(float64(title.G) * brightness)
	title.B = uint8(float64(title.B) * brightness)
	DrawCentered(screen, data.Title, 30, 3, title)

	for i, b := range ts.buttons {
		b.Draw(screen, i == ts.selected)
	}
}
