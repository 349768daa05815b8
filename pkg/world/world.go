package world

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
	"github.com/golangdaddy/bogger/pkg/lane"
)

// ErrRowOutOfRange is returned for any access to a row that is not tracked,
// either above the generated top or below the trimmed bottom.
var ErrRowOutOfRange = errors.New("row out of range")

// Painter is the render collaborator. Slot counts rows up from the bottom
// of the visible window.
type Painter interface {
	PaintLane(slot int, kind lane.Kind)
	PaintEntity(slot int, e entity.Entity)
	PaintFault()
}

// World is the front-growing sequence of lanes. Row numbers are absolute:
// row 0 is the first lane ever generated since the last Reset, and stays row
// 0 even after lanes below the player are trimmed away.
type World struct {
	arena      *entity.Arena
	lanes      []*lane.Lane
	base       int // absolute row of lanes[0]
	rng        lane.Source
	fieldWidth float64
}

// New creates an empty world drawing layouts from rng.
func New(rng lane.Source) *World {
	return &World{
		arena:      entity.NewArena(),
		lanes:      make([]*lane.Lane, 0, 64),
		rng:        rng,
		fieldWidth: config.FieldWidth,
	}
}

// Arena exposes entity storage so callers can resolve handles.
func (w *World) Arena() *entity.Arena {
	return w.arena
}

// Len returns the number of rows ever generated (one past the top row).
func (w *World) Len() int {
	return w.base + len(w.lanes)
}

// Base returns the lowest row still tracked.
func (w *World) Base() int {
	return w.base
}

// Lane returns the lane at row.
func (w *World) Lane(row int) (*lane.Lane, error) {
	i := row - w.base
	if i < 0 || i >= len(w.lanes) {
		return nil, fmt.Errorf("%w: row %d, tracked [%d,%d)", ErrRowOutOfRange, row, w.base, w.Len())
	}
	return w.lanes[i], nil
}

// KindAt returns the lane kind at row.
func (w *World) KindAt(row int) (lane.Kind, error) {
	l, err := w.Lane(row)
	if err != nil {
		return lane.Grass, err
	}
	return l.Kind, nil
}

// AddRow appends l at the top of the world.
func (w *World) AddRow(l *lane.Lane) {
	w.lanes = append(w.lanes, l)
}

// AddToRow places h in the lane at row.
func (w *World) AddToRow(row int, h entity.Handle) error {
	l, err := w.Lane(row)
	if err != nil {
		return err
	}
	l.Add(h)
	return nil
}

// RemoveFromRow detaches h from the lane at row without freeing it.
func (w *World) RemoveFromRow(row int, h entity.Handle) error {
	l, err := w.Lane(row)
	if err != nil {
		return err
	}
	l.Remove(h)
	return nil
}

// Update advances every entity in the WindowRows lanes starting at startRow.
func (w *World) Update(startRow int, dt float64) error {
	if _, err := w.Lane(startRow); err != nil {
		return err
	}
	end := min(startRow+config.WindowRows, w.Len())
	for row := startRow; row < end; row++ {
		w.lanes[row-w.base].Advance(w.arena, dt, w.fieldWidth)
	}
	return nil
}

// Draw hands the WindowRows lanes starting at startRow to p, bottom up. An
// untracked startRow paints the fault fill instead.
func (w *World) Draw(startRow int, p Painter) error {
	if _, err := w.Lane(startRow); err != nil {
		p.PaintFault()
		return err
	}
	end := min(startRow+config.WindowRows, w.Len())
	for row := startRow; row < end; row++ {
		l := w.lanes[row-w.base]
		slot := row - startRow
		p.PaintLane(slot, l.Kind)
		for _, h := range l.Members() {
			if e := w.arena.Get(h); e != nil {
				p.PaintEntity(slot, *e)
			}
		}
	}
	return nil
}

// Reset drops every lane, freeing all hazards, and lays down grassRows fresh
// grass lanes. The keep handle (the player) survives.
func (w *World) Reset(grassRows int, keep entity.Handle) {
	for _, l := range w.lanes {
		l.Release(w.arena, keep)
	}
	w.lanes = w.lanes[:0]
	w.base = 0
	for i := 0; i < grassRows; i++ {
		w.AddRow(lane.NewGrass())
	}
}

// Trim drops and frees lanes below keepFrom. It returns how many were dropped.
func (w *World) Trim(keepFrom int, keep entity.Handle) int {
	n := keepFrom - w.base
	if n <= 0 {
		return 0
	}
	if n > len(w.lanes) {
		n = len(w.lanes)
	}
	for _, l := range w.lanes[:n] {
		l.Release(w.arena, keep)
	}
	w.lanes = append(w.lanes[:0], w.lanes[n:]...)
	w.base += n
	return n
}

// SlotY is the screen y of the top edge of window slot. The player's row
// (slot WindowBelow) sits at SpawnY; higher slots are further up.
func SlotY(slot int) float64 {
	return config.SpawnY - float64(slot-config.WindowBelow)*config.TileHeight
}
