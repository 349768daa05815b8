package world

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
	"github.com/golangdaddy/bogger/pkg/lane"
)

func newWorld(seed uint64) *World {
	return New(rand.New(rand.NewPCG(seed, 0)))
}

type paintCall struct {
	slot   int
	lane   lane.Kind
	entity *entity.Entity
}

type recordingPainter struct {
	calls  []paintCall
	faults int
}

func (p *recordingPainter) PaintLane(slot int, kind lane.Kind) {
	p.calls = append(p.calls, paintCall{slot: slot, lane: kind})
}

func (p *recordingPainter) PaintEntity(slot int, e entity.Entity) {
	p.calls = append(p.calls, paintCall{slot: slot, entity: &e})
}

func (p *recordingPainter) PaintFault() {
	p.faults++
}

func TestGenerateRunsAreBoundedAndEndInGrass(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		w := newWorld(seed)
		w.Reset(config.ResetGrassRows, entity.Handle{})
		w.Generate(500, 1.0)
		if w.Len() < 500 {
			t.Fatalf("seed %d: len = %d, want >= 500", seed, w.Len())
		}

		row := config.ResetGrassRows
		for row < w.Len() {
			first, _ := w.KindAt(row)
			if first == lane.Grass {
				t.Fatalf("seed %d: run at row %d starts with grass", seed, row)
			}
			n := 0
			for {
				k, err := w.KindAt(row)
				if err != nil {
					t.Fatalf("seed %d: run at row %d not terminated by grass", seed, row)
				}
				if k != first {
					break
				}
				n++
				row++
			}
			if n < config.RunMin || n > config.RunMax {
				t.Fatalf("seed %d: run of %d %v lanes, want [%d,%d]", seed, n, first, config.RunMin, config.RunMax)
			}
			if k, _ := w.KindAt(row); k != lane.Grass {
				t.Fatalf("seed %d: run followed by %v, want grass", seed, k)
			}
			row++
		}
	}
}

func TestGenerateIsNoopWhenTall(t *testing.T) {
	w := newWorld(1)
	w.Reset(config.ResetGrassRows, entity.Handle{})
	if added := w.Generate(3, 1.0); added != 0 {
		t.Fatalf("added = %d, want 0", added)
	}
}

func TestCheckCollisionFindsLog(t *testing.T) {
	w := newWorld(1)
	water := lane.New(lane.Water)
	log := w.arena.Insert(entity.Entity{Kind: entity.Log, X: 90, Velocity: 20, Width: 48, Height: 14})
	water.Add(log)
	w.AddRow(water)
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 100, Width: 16})
	if err := w.AddToRow(0, player); err != nil {
		t.Fatal(err)
	}

	got, ok, err := w.CheckCollision(0, player)
	if err != nil || !ok || got != log {
		t.Fatalf("collision = (%v, %v, %v), want the log", got, ok, err)
	}
}

func TestCheckCollisionIgnoresPlayerAndEdgeContact(t *testing.T) {
	w := newWorld(1)
	road := lane.New(lane.Road)
	road.Add(w.arena.Insert(entity.Entity{Kind: entity.Vehicle, X: 116, Velocity: 2, Width: 16}))
	road.Add(w.arena.Insert(entity.Entity{Kind: entity.Vehicle, X: 84, Velocity: 2, Width: 16}))
	w.AddRow(road)
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 100, Width: 16})
	w.AddToRow(0, player)

	if _, ok, _ := w.CheckCollision(0, player); ok {
		t.Fatalf("edge contact on both sides reported as collision")
	}
}

func TestCheckCollisionVehicle(t *testing.T) {
	w := newWorld(1)
	road := lane.New(lane.Road)
	car := w.arena.Insert(entity.Entity{Kind: entity.Vehicle, X: 95, Velocity: 240, Width: 16})
	road.Add(car)
	w.AddRow(road)
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 100, Width: 16})
	w.AddToRow(0, player)

	got, ok, _ := w.CheckCollision(0, player)
	if !ok || got != car {
		t.Fatalf("vehicle behind player by 5px not detected")
	}
}

func TestCheckCollisionWrappedFloat(t *testing.T) {
	w := newWorld(1)
	water := lane.New(lane.Water)
	// Log spans [300, 396): its tail has wrapped to [0, 76) on screen.
	log := w.arena.Insert(entity.Entity{Kind: entity.Log, X: 300, Velocity: -50, Width: 96})
	water.Add(log)
	w.AddRow(water)
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 10, Width: 16})
	w.AddToRow(0, player)

	got, ok, _ := w.CheckCollision(0, player)
	if !ok || got != log {
		t.Fatalf("wrapped log not detected")
	}
}

func TestCheckCollisionWrappedVehicleIsMissed(t *testing.T) {
	// Only floats get the wrapped test; a vehicle straddling the right edge
	// does not hit a player near the left edge.
	w := newWorld(1)
	road := lane.New(lane.Road)
	road.Add(w.arena.Insert(entity.Entity{Kind: entity.Vehicle, X: 310, Velocity: 20, Width: 16}))
	w.AddRow(road)
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 2, Width: 16})
	w.AddToRow(0, player)

	if _, ok, _ := w.CheckCollision(0, player); ok {
		t.Fatalf("wrapped vehicle reported as collision")
	}
}

func TestCheckCollisionStationaryFloatSkipsWrap(t *testing.T) {
	w := newWorld(1)
	water := lane.New(lane.Water)
	water.Add(w.arena.Insert(entity.Entity{Kind: entity.Log, X: 300, Velocity: 0, Width: 96}))
	w.AddRow(water)
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 10, Width: 16})
	w.AddToRow(0, player)

	if _, ok, _ := w.CheckCollision(0, player); ok {
		t.Fatalf("stationary float got the wrapped test")
	}
}

func TestLaneOutOfRange(t *testing.T) {
	w := newWorld(1)
	w.Reset(3, entity.Handle{})
	if _, err := w.Lane(3); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("err = %v, want ErrRowOutOfRange", err)
	}
	if _, err := w.Lane(-1); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("err = %v, want ErrRowOutOfRange", err)
	}
	if _, _, err := w.CheckCollision(9, entity.Handle{}); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("collision err = %v, want ErrRowOutOfRange", err)
	}
	if err := w.Update(7, 0.1); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("update err = %v, want ErrRowOutOfRange", err)
	}
}

func TestDrawWindowAndFault(t *testing.T) {
	w := newWorld(4)
	w.Reset(config.ResetGrassRows, entity.Handle{})
	w.Generate(40, 1.0)

	p := &recordingPainter{}
	if err := w.Draw(3, p); err != nil {
		t.Fatalf("draw: %v", err)
	}
	lanes := 0
	for _, c := range p.calls {
		if c.entity == nil {
			if c.slot != lanes {
				t.Fatalf("lane slot = %d, want %d", c.slot, lanes)
			}
			lanes++
		}
	}
	if lanes != config.WindowRows {
		t.Fatalf("painted %d lanes, want %d", lanes, config.WindowRows)
	}

	p = &recordingPainter{}
	if err := w.Draw(1000, p); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("draw err = %v, want ErrRowOutOfRange", err)
	}
	if p.faults != 1 || len(p.calls) != 0 {
		t.Fatalf("fault draw: faults=%d calls=%d", p.faults, len(p.calls))
	}
}

func TestUpdateOnlyTouchesWindow(t *testing.T) {
	w := newWorld(1)
	var hs []entity.Handle
	for i := 0; i < config.WindowRows+3; i++ {
		l := lane.New(lane.Road)
		h := w.arena.Insert(entity.Entity{Kind: entity.Vehicle, X: 10, Velocity: 10, Width: 16})
		l.Add(h)
		hs = append(hs, h)
		w.AddRow(l)
	}
	if err := w.Update(1, 1.0); err != nil {
		t.Fatal(err)
	}
	for i, h := range hs {
		want := 20.0
		if i < 1 || i >= 1+config.WindowRows {
			want = 10
		}
		if got := w.arena.Get(h).X; got != want {
			t.Fatalf("row %d x = %v, want %v", i, got, want)
		}
	}
}

func TestResetFreesHazardsButKeepsPlayer(t *testing.T) {
	w := newWorld(2)
	w.Reset(config.ResetGrassRows, entity.Handle{})
	player := w.arena.Insert(entity.Entity{Kind: entity.Player, X: 160, Width: 16})
	w.AddToRow(config.SpawnRow, player)
	w.Generate(60, 1.0)
	if w.arena.Len() <= 1 {
		t.Fatalf("expected hazards after generation")
	}

	w.Reset(config.ResetGrassRows, player)
	if w.Len() != config.ResetGrassRows {
		t.Fatalf("len after reset = %d, want %d", w.Len(), config.ResetGrassRows)
	}
	for row := 0; row < w.Len(); row++ {
		if k, _ := w.KindAt(row); k != lane.Grass {
			t.Fatalf("row %d = %v after reset, want grass", row, k)
		}
	}
	if w.arena.Len() != 1 || w.arena.Get(player) == nil {
		t.Fatalf("arena len = %d after reset, want only the player", w.arena.Len())
	}
}

func TestTrimKeepsAbsoluteRows(t *testing.T) {
	w := newWorld(3)
	w.Reset(config.ResetGrassRows, entity.Handle{})
	w.Generate(80, 1.0)
	top := w.Len()
	kind50, _ := w.KindAt(50)
	before := w.arena.Len()

	if n := w.Trim(40, entity.Handle{}); n != 40 {
		t.Fatalf("trimmed %d, want 40", n)
	}
	if w.Base() != 40 || w.Len() != top {
		t.Fatalf("base=%d len=%d, want 40 and %d", w.Base(), w.Len(), top)
	}
	if k, _ := w.KindAt(50); k != kind50 {
		t.Fatalf("row 50 changed kind after trim")
	}
	if _, err := w.Lane(39); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("trimmed row still reachable")
	}
	if w.arena.Len() >= before {
		t.Fatalf("trim did not free entities: %d -> %d", before, w.arena.Len())
	}
	if n := w.Trim(10, entity.Handle{}); n != 0 {
		t.Fatalf("trim below base dropped %d", n)
	}

	w.Generate(top+20, 1.0)
	if w.Len() < top+20 {
		t.Fatalf("generation after trim stalled at %d", w.Len())
	}
}
