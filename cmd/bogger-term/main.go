// Command bogger-term plays the game in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/data"
	"github.com/golangdaddy/bogger/pkg/input"
	"github.com/golangdaddy/bogger/pkg/session"
	"github.com/golangdaddy/bogger/pkg/termui"
)

const restartHint = "click or space to play again"

func main() {
	cfgPath := flag.String("config", "bogger.ini", "settings file")
	tier := flag.String("difficulty", "", "Easy, Medium, Hard or Harder (overrides the settings file)")
	logPath := flag.String("log", "", "write logs to this file; the terminal is busy drawing")
	flag.Parse()

	if *logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	d := cfg.Difficulty()
	if *tier != "" {
		if d, err = config.ParseDifficulty(*tier); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ctx, err := session.New(session.Options{
		Rand:       rand.New(rand.NewPCG(seed, 0)),
		ScoresPath: cfg.Game.ScoresPath,
		Difficulty: d,
	})
	if err != nil {
		log.Printf("Failed to load scores: %v", err)
	}
	ctx.Start(d)

	s, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	run(s, ctx)
}

func run(s tcell.Screen, ctx *session.Context) {
	painter := termui.NewPainter(s)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			events <- s.PollEvent()
		}
	}()

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	var mouse input.Sample
	var click *input.Sample
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if handleQuit(e) {
					if _, err := ctx.Abort(); err != nil {
						log.Printf("Failed to record score: %v", err)
					}
					return
				}
				handleKey(ctx, e)
			case *tcell.EventMouse:
				x, y := e.Position()
				mouse = termui.SampleAt(x, y, e.Buttons()&tcell.Button1 != 0)
				if mouse.Touching {
					// Keep the press even if it is released before the next tick.
					press := mouse
					click = &press
				}
			}
		case <-tick.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			sample := mouse
			if click != nil {
				sample, click = *click, nil
			}
			ctx.Tick(dt, sample)
			render(s, painter, ctx)
		}
	}
}

func handleKey(ctx *session.Context, e *tcell.EventKey) {
	if ctx.Waiting() {
		if e.Key() == tcell.KeyEnter || (e.Key() == tcell.KeyRune && e.Rune() == ' ') {
			ctx.Resume()
		}
		return
	}
	switch e.Key() {
	case tcell.KeyUp:
		ctx.Move(input.Up)
	case tcell.KeyDown:
		ctx.Move(input.Down)
	case tcell.KeyLeft:
		ctx.Move(input.Left)
	case tcell.KeyRight:
		ctx.Move(input.Right)
	}
}

func handleQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	r := e.Rune()
	return r == 'q' || r == 'Q'
}

func render(s tcell.Screen, p *termui.Painter, ctx *session.Context) {
	p.Begin()
	if err := ctx.Draw(p); err != nil {
		log.Printf("Draw: %v", err)
	}
	p.DrawHUD(ctx.Board, ctx.Difficulty, data.TerminalHelp)
	if ctx.Waiting() {
		p.DrawGameOver(ctx.LastResult(), data.GameOver, restartHint)
	}
	s.Show()
}
