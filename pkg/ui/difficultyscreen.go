package ui

import (
	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DifficultyScreen picks the tier a run is played at.
type DifficultyScreen struct {
	buttons  []Button
	selected int
	tapper   tapper
	onSelect func(config.Difficulty)
	onReturn func()
}

// NewDifficultyScreen lists every tier, preselecting current.
func NewDifficultyScreen(current config.Difficulty, onSelect func(config.Difficulty), onReturn func()) *DifficultyScreen {
	ds := &DifficultyScreen{
		tapper:   newTapper(),
		onSelect: onSelect,
		onReturn: onReturn,
	}
	for i, tier := range config.Tiers {
		ds.buttons = append(ds.buttons, Button{
			X: 100, Y: 64 + float64(i)*36, W: 120, H: 26,
			Label: tier.Name,
		})
		if tier.Value == current {
			ds.selected = i
		}
	}
	return ds
}

// Update handles input for the difficulty list
func (ds *DifficultyScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ds.onReturn()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		ds.selected = (ds.selected + len(ds.buttons) - 1) % len(ds.buttons)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		ds.selected = (ds.selected + 1) % len(ds.buttons)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		ds.onSelect(config.Tiers[ds.selected].Value)
		return nil
	}

	s, pressed := ds.tapper.poll()
	if !pressed {
		return nil
	}
	if ReturnButton.Contains(s.X, s.Y) {
		ds.onReturn()
		return nil
	}
	for i, b := range ds.buttons {
		if b.Contains(s.X, s.Y) {
			ds.onSelect(config.Tiers[i].Value)
			return nil
		}
	}
	return nil
}

// Draw renders the difficulty list
func (ds *DifficultyScreen) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	ReturnButton.Draw(screen, false)
	DrawCentered(screen, "Difficulty", 36, 1, Pale)
	for i, b := range ds.buttons {
		b.Draw(screen, i == ds.selected)
	}
}
