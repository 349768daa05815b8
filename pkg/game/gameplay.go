package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/data"
	"github.com/golangdaddy/bogger/pkg/input"
	"github.com/golangdaddy/bogger/pkg/session"
	"github.com/golangdaddy/bogger/pkg/sfx"
	"github.com/golangdaddy/bogger/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxStep caps dt so a stalled window does not teleport everything.
const maxStep = 0.25

var arrowKeys = map[ebiten.Key]input.Direction{
	ebiten.KeyArrowUp:    input.Up,
	ebiten.KeyArrowDown:  input.Down,
	ebiten.KeyArrowLeft:  input.Left,
	ebiten.KeyArrowRight: input.Right,
}

// cues maps session events to sounds.
var cues = map[session.Event]sfx.Cue{
	session.Hopped:    sfx.Hop,
	session.Drowned:   sfx.Splash,
	session.Squashed:  sfx.Squash,
	session.Restarted: sfx.Restart,
}

// GameplayScreen drives a session from ebiten input and draws it.
type GameplayScreen struct {
	session    *session.Context
	painter    *painter
	sound      *sfx.Player
	lastUpdate time.Time
	returnTaps input.Tracker
	showFPS    bool
	onExit     func()
}

// NewGameplayScreen wraps a started session.
func NewGameplayScreen(ctx *session.Context, p *painter, sound *sfx.Player, showFPS bool, onExit func()) *GameplayScreen {
	gs := &GameplayScreen{
		session:    ctx,
		painter:    p,
		sound:      sound,
		lastUpdate: time.Now(),
		showFPS:    showFPS,
		onExit:     onExit,
	}
	gs.returnTaps.Hold()
	return gs
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	now := time.Now()
	dt := min(now.Sub(gs.lastUpdate).Seconds(), maxStep)
	gs.lastUpdate = now

	sample := ui.PollPointer()
	tapped := gs.returnTaps.Pressed(sample)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (tapped && ui.ReturnButton.Contains(sample.X, sample.Y)) {
		if _, err := gs.session.Abort(); err != nil {
			log.Printf("Failed to record score: %v", err)
		}
		gs.onExit()
		return nil
	}

	if gs.session.Waiting() && (inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		gs.session.Resume()
		gs.sound.Play(sfx.Restart)
		return nil
	}
	for key, dir := range arrowKeys {
		if inpututil.IsKeyJustPressed(key) && gs.session.Move(dir) {
			gs.sound.Play(sfx.Hop)
		}
	}

	if cue, ok := cues[gs.session.Tick(dt, sample)]; ok {
		gs.sound.Play(cue)
	}
	return nil
}

// Draw renders the lanes, the HUD and the game over overlay
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	gs.painter.begin(screen)
	if err := gs.session.Draw(gs.painter); err != nil {
		log.Printf("Draw: %v", err)
	}
	gs.painter.end()

	gs.drawHUD(screen)
	if gs.session.Waiting() {
		gs.drawGameOver(screen)
	}
	if gs.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, config.FieldHeight-16)
	}
}

func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.FieldWidth, 2*config.TileHeight-2, color.RGBA{0, 0, 0, 160}, false)
	ui.ReturnButton.Draw(screen, false)

	current, high := gs.session.Board.Labels()
	scoreColor := color.Color(ui.White)
	if gs.session.Board.Beaten() {
		scoreColor = ui.Gold
	}
	x := float64(config.ReturnX + config.ReturnW + 40)
	ui.DrawText(screen, current, x, 2, 1, scoreColor)
	ui.DrawText(screen, high, x, 2+ui.LineHeight(), 1, ui.Pale)
}

func (gs *GameplayScreen) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 40, 70, config.FieldWidth-80, 100, color.RGBA{0, 0, 0, 200}, false)
	ui.DrawCentered(screen, data.GameOver, 80, 2, color.RGBA{230, 60, 60, 255})

	res := gs.session.LastResult()
	line := fmt.Sprintf("Score %0*d", config.ScoreDigits, res.Final)
	if res.NewHighMark {
		line = "New high! " + line
	}
	ui.DrawCentered(screen, line, 116, 1, ui.Gold)
	ui.DrawCentered(screen, data.RestartHint, 140, 1, ui.Pale)
}
