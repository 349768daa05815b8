package game

import (
	"log"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/data"
	"github.com/golangdaddy/bogger/pkg/lane"
	"github.com/golangdaddy/bogger/pkg/score"
	"github.com/golangdaddy/bogger/pkg/session"
	"github.com/golangdaddy/bogger/pkg/sfx"
	"github.com/golangdaddy/bogger/pkg/sprite"
	"github.com/golangdaddy/bogger/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// recentRuns is how many past scores the stats screen lists.
const recentRuns = 8

// Options wires a Game to its settings and randomness.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Rand       lane.Source
	SpriteSeed uint64
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           *config.Config
	cfgPath       string
	session       *session.Context
	painter       *painter
	sound         *sfx.Player
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance showing the main menu.
func NewGame(opts Options) (*Game, error) {
	ctx, err := session.New(session.Options{
		Rand:       opts.Rand,
		ScoresPath: opts.Config.Game.ScoresPath,
		Difficulty: opts.Config.Difficulty(),
	})
	if err != nil {
		// The history is only needed for the high score; play on without it.
		log.Printf("Failed to load scores: %v", err)
	}

	g := &Game{
		cfg:     opts.Config,
		cfgPath: opts.ConfigPath,
		session: ctx,
		painter: newPainter(sprite.NewSet(opts.SpriteSeed)),
		sound:   sfx.NewPlayer(opts.Config.Audio.Enabled, opts.Config.Audio.Volume),
	}
	g.showMenu()
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the fixed field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return config.FieldWidth, config.FieldHeight
}

func (g *Game) showMenu() {
	g.currentScreen = ui.NewTitleScreen(func(choice ui.MenuChoice) {
		g.sound.Play(sfx.Select)
		switch choice {
		case ui.MenuPlay:
			g.currentScreen = ui.NewDifficultyScreen(g.session.Difficulty, g.startGameplay, g.showMenu)
		case ui.MenuStats:
			g.showStats()
		case ui.MenuInstructions:
			g.currentScreen = ui.NewInfoScreen("Instructions", data.Instructions, g.showMenu)
		case ui.MenuCredits:
			g.currentScreen = ui.NewInfoScreen("Credits", data.Credits, g.showMenu)
		}
	})
}

func (g *Game) showStats() {
	scores, err := score.History{Path: g.cfg.Game.ScoresPath}.Load()
	if err != nil {
		log.Printf("Failed to read score history: %v", err)
	}
	g.currentScreen = ui.NewInfoScreen("Stats", ui.StatsLines(scores, recentRuns), g.showMenu)
}

// startGameplay begins a run and remembers the tier for next launch.
func (g *Game) startGameplay(d config.Difficulty) {
	g.sound.Play(sfx.Select)
	if g.cfg.Game.Difficulty != d.String() {
		g.cfg.Game.Difficulty = d.String()
		if g.cfgPath != "" {
			if err := config.Save(g.cfgPath, g.cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
	}
	g.session.Start(d)
	g.currentScreen = NewGameplayScreen(g.session, g.painter, g.sound, g.cfg.Window.ShowFPS, g.showMenu)
}
