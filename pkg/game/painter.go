package game

import (
	"math"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
	"github.com/golangdaddy/bogger/pkg/lane"
	"github.com/golangdaddy/bogger/pkg/sprite"
	"github.com/golangdaddy/bogger/pkg/ui"
	"github.com/golangdaddy/bogger/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// painter draws world slots onto an ebiten screen from the sprite set.
type painter struct {
	screen  *ebiten.Image
	sprites *sprite.Set
	tiles   map[lane.Kind]*ebiten.Image
	fault   *ebiten.Image
	frog    *ebiten.Image
	turtle  *ebiten.Image
	cars    []*ebiten.Image
	logs    map[int]*ebiten.Image
	faulted bool
}

func newPainter(set *sprite.Set) *painter {
	p := &painter{
		sprites: set,
		tiles: map[lane.Kind]*ebiten.Image{
			lane.Grass: ebiten.NewImageFromImage(set.Grass),
			lane.Road:  ebiten.NewImageFromImage(set.Road),
			lane.Water: ebiten.NewImageFromImage(set.Water),
		},
		fault:  ebiten.NewImageFromImage(set.Fault),
		frog:   ebiten.NewImageFromImage(set.Frog),
		turtle: ebiten.NewImageFromImage(set.Turtle),
		logs:   make(map[int]*ebiten.Image),
	}
	for _, c := range set.Cars {
		p.cars = append(p.cars, ebiten.NewImageFromImage(c))
	}
	return p
}

func (p *painter) begin(screen *ebiten.Image) {
	p.screen = screen
	p.faulted = false
}

func (p *painter) end() {
	if p.faulted {
		ui.DrawCentered(p.screen, "LANE FAULT", config.FieldHeight/2, 2, ui.Gold)
	}
	p.screen = nil
}

// PaintLane tiles one slot across the field.
func (p *painter) PaintLane(slot int, kind lane.Kind) {
	img, ok := p.tiles[kind]
	if !ok {
		img = p.fault
	}
	y := world.SlotY(slot)
	for x := 0.0; x < config.FieldWidth; x += config.TileWidth {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		p.screen.DrawImage(img, op)
	}
}

// PaintEntity draws e in slot, a second time one field-width left when it
// hangs off the right edge.
func (p *painter) PaintEntity(slot int, e entity.Entity) {
	img := p.imageFor(e)
	y := world.SlotY(slot) + (config.TileHeight-e.Height)/2
	flip := e.Kind == entity.Vehicle && e.Velocity < 0

	p.draw(img, e.X, y, e.Width, flip)
	if e.X+e.Width > config.FieldWidth {
		p.draw(img, e.X-config.FieldWidth, y, e.Width, flip)
	}
}

// PaintFault covers the field with the fault tile; end labels it.
func (p *painter) PaintFault() {
	p.faulted = true
	for _, pt := range fieldTiles() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pt[0], pt[1])
		p.screen.DrawImage(p.fault, op)
	}
}

// fieldTiles returns the top-left corner of every tile on the field.
func fieldTiles() [][2]float64 {
	var pts [][2]float64
	for y := 0.0; y < config.FieldHeight; y += config.TileHeight {
		for x := 0.0; x < config.FieldWidth; x += config.TileWidth {
			pts = append(pts, [2]float64{x, y})
		}
	}
	return pts
}

func (p *painter) draw(img *ebiten.Image, x, y, width float64, flip bool) {
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(width, 0)
	}
	op.GeoM.Translate(x, y)
	p.screen.DrawImage(img, op)
}

func (p *painter) imageFor(e entity.Entity) *ebiten.Image {
	switch e.Kind {
	case entity.Player:
		return p.frog
	case entity.Turtle:
		return p.turtle
	case entity.Log:
		w := int(e.Width)
		if img, ok := p.logs[w]; ok {
			return img
		}
		img := ebiten.NewImageFromImage(p.sprites.LogFor(w))
		p.logs[w] = img
		return img
	case entity.Vehicle:
		return p.cars[int(math.Abs(e.Velocity))%len(p.cars)]
	}
	return p.fault
}
