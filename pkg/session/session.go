// Package session runs one player's game: it routes move commands, asks the
// world about collisions, keeps score and handles the end-of-run reset.
// It is frontend agnostic; ebiten and tcell frontends both drive a Context.
package session

import (
	"fmt"
	"log"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
	"github.com/golangdaddy/bogger/pkg/input"
	"github.com/golangdaddy/bogger/pkg/lane"
	"github.com/golangdaddy/bogger/pkg/score"
	"github.com/golangdaddy/bogger/pkg/world"
)

// Event is what a tick produced, for sound and UI feedback.
type Event int

const (
	Nothing   Event = iota
	Hopped          // the player moved
	Riding          // the player is being carried by a float
	Squashed        // hit a vehicle
	Drowned         // fell into open water
	Restarted       // the post-run gate opened
)

func (e Event) String() string {
	switch e {
	case Hopped:
		return "hopped"
	case Riding:
		return "riding"
	case Squashed:
		return "squashed"
	case Drowned:
		return "drowned"
	case Restarted:
		return "restarted"
	}
	return "nothing"
}

// Fatal reports whether the event ended the run.
func (e Event) Fatal() bool {
	return e == Squashed || e == Drowned
}

// Options configures a new Context.
type Options struct {
	Rand       lane.Source
	ScoresPath string
	Difficulty config.Difficulty
}

// Context is the game state threaded through the loop. It is not safe for
// concurrent use; one loop owns it.
type Context struct {
	Difficulty config.Difficulty
	World      *world.World
	Board      *score.Board

	player entity.Handle
	row    int
	taps   input.Tracker
	gate   input.Gate
	last   score.Result
}

// New builds a context with a fresh world and the score history loaded.
// A history read failure is returned but leaves a usable context.
func New(opts Options) (*Context, error) {
	c := &Context{
		Difficulty: opts.Difficulty,
		World:      world.New(opts.Rand),
		Board:      score.NewBoard(opts.ScoresPath),
	}
	c.player = c.World.Arena().Insert(spawnPlayer())
	c.resetWorld()

	if err := c.Board.Load(); err != nil {
		return c, fmt.Errorf("failed to load score history: %w", err)
	}
	return c, nil
}

func spawnPlayer() entity.Entity {
	return entity.Entity{
		Kind:   entity.Player,
		X:      config.SpawnX,
		Y:      config.SpawnY,
		Width:  config.PlayerWidth,
		Height: config.TileHeight,
	}
}

// resetWorld lays down the starting grass and puts the player on the spawn row.
func (c *Context) resetWorld() {
	c.World.Reset(config.ResetGrassRows, c.player)
	*c.World.Arena().Get(c.player) = spawnPlayer()
	c.row = config.SpawnRow
	if err := c.World.AddToRow(c.row, c.player); err != nil {
		log.Printf("session: spawn failed: %v", err)
	}
}

// Start begins a new run at difficulty d.
func (c *Context) Start(d config.Difficulty) {
	c.Difficulty = d
	c.Board.Reset()
	c.resetWorld()
	c.gate.Open()
	c.taps.Hold()
	log.Printf("session: run started at %s", d)
}

// Row returns the player's absolute row.
func (c *Context) Row() int {
	return c.row
}

// Player returns a copy of the player entity.
func (c *Context) Player() entity.Entity {
	return *c.World.Arena().Get(c.player)
}

// PlayerHandle returns the player's stable handle.
func (c *Context) PlayerHandle() entity.Handle {
	return c.player
}

// Waiting reports whether a run ended and play is held until a fresh touch.
func (c *Context) Waiting() bool {
	return c.gate.Armed()
}

// Resume releases the post-run hold without a touch (keyboard frontends).
func (c *Context) Resume() {
	c.gate.Open()
}

// LastResult returns the outcome of the most recent finished run.
func (c *Context) LastResult() score.Result {
	return c.last
}

// Tick runs one loop iteration: input, then Step.
func (c *Context) Tick(dt float64, s input.Sample) Event {
	pressed := c.taps.Pressed(s)
	if c.gate.Armed() {
		if c.gate.Feed(s) {
			return Restarted
		}
		return Nothing
	}

	ev := Nothing
	if pressed && c.Move(input.DirectionFrom(s.X, s.Y, c.Player())) {
		ev = Hopped
	}
	if res := c.Step(dt); res != Nothing {
		ev = res
	}
	return ev
}

// Move applies one discrete command. It reports whether the player moved.
func (c *Context) Move(dir input.Direction) bool {
	if c.gate.Armed() {
		return false
	}
	p := c.World.Arena().Get(c.player)
	d := float64(c.Difficulty)

	switch dir {
	case input.Up:
		c.World.Generate(c.row+1+config.Lookahead, d)
		return c.relocate(c.row+1, func() { c.Board.AddRow(d) })
	case input.Down:
		if c.row < config.StartZoneRow || c.row-1 < c.World.Base()+config.WindowBelow {
			return false
		}
		return c.relocate(c.row-1, func() { c.Board.RemRow(d) })
	case input.Right:
		if p.X >= config.FieldWidth-config.TileWidth {
			return false
		}
		p.Move(config.TileWidth, 0)
		return true
	case input.Left:
		if p.X <= config.TileWidth-1 {
			return false
		}
		p.Move(-config.TileWidth, 0)
		return true
	}
	return false
}

func (c *Context) relocate(row int, scored func()) bool {
	if _, err := c.World.Lane(row); err != nil {
		log.Printf("session: cannot move to row %d: %v", row, err)
		return false
	}
	if err := c.World.RemoveFromRow(c.row, c.player); err != nil {
		log.Printf("session: player missing from row %d: %v", c.row, err)
	}
	c.row = row
	if err := c.World.AddToRow(c.row, c.player); err != nil {
		log.Printf("session: %v", err)
	}
	scored()
	return true
}

// Step advances time by dt seconds: generation, collision, kinematics, score.
func (c *Context) Step(dt float64) Event {
	if c.gate.Armed() {
		return Nothing
	}
	d := float64(c.Difficulty)
	if c.row <= config.StartZoneRow {
		c.Board.Reset()
	}
	c.World.Generate(c.row+config.Lookahead, d)
	c.World.Trim(c.row-config.TrailRows, c.player)

	ev := c.resolve(dt)
	if ev.Fatal() {
		if _, err := c.EndRun(); err != nil {
			log.Printf("session: %v", err)
		}
		return ev
	}

	if err := c.World.Update(c.row-config.WindowBelow, dt); err != nil {
		log.Printf("session: update: %v", err)
	}
	c.Board.Decay(dt)
	return ev
}

// resolve interprets the collision at the player's row.
func (c *Context) resolve(dt float64) Event {
	kind, err := c.World.KindAt(c.row)
	if err != nil {
		log.Printf("session: %v", err)
		return Nothing
	}
	hit, ok, err := c.World.CheckCollision(c.row, c.player)
	if err != nil {
		log.Printf("session: %v", err)
		return Nothing
	}

	var other *entity.Entity
	if ok {
		other = c.World.Arena().Get(hit)
	}
	switch kind {
	case lane.Water:
		if other == nil {
			return Drowned
		}
		if !other.Kind.IsFloat() {
			return Squashed
		}
		p := c.World.Arena().Get(c.player)
		if p.X >= 1 && p.X <= config.FieldWidth-p.Width {
			p.Move(other.Velocity*dt, 0)
		}
		return Riding
	case lane.Grass, lane.Road:
		if other != nil {
			return Squashed
		}
	}
	return Nothing
}

// EndRun records the score, reloads the high score, resets the world and
// player, and holds play until a fresh touch.
func (c *Context) EndRun() (score.Result, error) {
	res, err := c.Board.Finish()
	c.last = res
	c.resetWorld()
	c.gate.Arm()
	log.Printf("session: run over, score %d (high %d, %d earlier runs)", res.Final, res.HighScore, res.PriorGames)
	if err != nil {
		return res, fmt.Errorf("failed to record score: %w", err)
	}
	return res, nil
}

// Abort ends the run without holding for a touch, for leaving to the menu.
// If the run already ended, nothing new is recorded.
func (c *Context) Abort() (score.Result, error) {
	if c.gate.Armed() {
		c.gate.Open()
		return c.last, nil
	}
	res, err := c.EndRun()
	c.gate.Open()
	return res, err
}

// Draw paints the visible window, starting WindowBelow rows under the player.
func (c *Context) Draw(p world.Painter) error {
	return c.World.Draw(c.row-config.WindowBelow, p)
}
