package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InfoScreen shows a title and a few lines of text with a Return button.
// Stats, instructions and credits all use it.
type InfoScreen struct {
	title    string
	lines    []string
	tapper   tapper
	onReturn func()
}

// NewInfoScreen creates a read-only text screen.
func NewInfoScreen(title string, lines []string, onReturn func()) *InfoScreen {
	return &InfoScreen{
		title:    title,
		lines:    lines,
		tapper:   newTapper(),
		onReturn: onReturn,
	}
}

// Update handles input for the info screen
func (is *InfoScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		is.onReturn()
		return nil
	}
	if s, pressed := is.tapper.poll(); pressed && ReturnButton.Contains(s.X, s.Y) {
		is.onReturn()
	}
	return nil
}

// Draw renders the info screen
func (is *InfoScreen) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	ReturnButton.Draw(screen, false)
	DrawCentered(screen, is.title, 36, 2, Gold)

	y := 72.0
	for _, line := range is.lines {
		DrawCentered(screen, line, y, 1, Pale)
		y += LineHeight()
	}
}
