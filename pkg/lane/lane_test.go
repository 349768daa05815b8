package lane

import (
	"math/rand/v2"
	"testing"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func entities(a *entity.Arena, l *Lane) []entity.Entity {
	var out []entity.Entity
	for _, h := range l.Members() {
		out = append(out, *a.Get(h))
	}
	return out
}

func TestRoadHasThreeSpeedTiers(t *testing.T) {
	a := entity.NewArena()
	l := NewRoad(a, newRand(1), 2.0)
	if l.Kind != Road {
		t.Fatalf("kind = %v, want road", l.Kind)
	}
	es := entities(a, l)
	if len(es) != 3 {
		t.Fatalf("vehicles = %d, want 3", len(es))
	}
	want := []float64{4, 40, 480}
	for i, e := range es {
		if e.Kind != entity.Vehicle {
			t.Fatalf("entity %d kind = %v, want vehicle", i, e.Kind)
		}
		if e.Velocity != want[i] {
			t.Fatalf("entity %d velocity = %v, want %v", i, e.Velocity, want[i])
		}
		if e.X < 0 || e.X >= config.FieldWidth {
			t.Fatalf("entity %d x = %v outside field", i, e.X)
		}
	}
}

func TestWaterPatterns(t *testing.T) {
	cases := []struct {
		pattern WaterPattern
		count   int
		kind    entity.Kind
		width   float64
	}{
		{NarrowLogs, 2, entity.Log, config.LogWidth1},
		{WideLog, 1, entity.Log, config.LogWidth2},
		{MediumLogs, 2, entity.Log, config.LogWidth3},
		{TurtleGroups, 9, entity.Turtle, config.TurtleWidth},
	}
	for _, c := range cases {
		a := entity.NewArena()
		l := NewWater(a, newRand(uint64(c.pattern)), 1.0, c.pattern)
		es := entities(a, l)
		if len(es) != c.count {
			t.Fatalf("pattern %d: %d entities, want %d", c.pattern, len(es), c.count)
		}
		for _, e := range es {
			if e.Kind != c.kind || e.Width != c.width {
				t.Fatalf("pattern %d: got %v w=%v, want %v w=%v", c.pattern, e.Kind, e.Width, c.kind, c.width)
			}
			if e.Velocity != es[0].Velocity {
				t.Fatalf("pattern %d: floats do not share a velocity", c.pattern)
			}
		}
		if c.pattern == TurtleGroups {
			if es[0].Velocity != config.TurtleSpeed {
				t.Fatalf("turtle velocity = %v, want %v", es[0].Velocity, config.TurtleSpeed)
			}
			for i, e := range es {
				if d := e.X - es[0].X; d != turtleOffsets[i]-turtleOffsets[0] {
					t.Fatalf("turtle %d relative offset = %v", i, d)
				}
			}
			continue
		}
		mag := es[0].Velocity
		if mag < 0 {
			mag = -mag
		}
		if mag < 30 || mag >= 150 {
			t.Fatalf("pattern %d: log speed %v outside [30,150)", c.pattern, mag)
		}
		if es[0].X < 0 || es[0].X >= config.FieldWidth/2 {
			t.Fatalf("pattern %d: first log x = %v not in left half", c.pattern, es[0].X)
		}
		if c.count == 2 && (es[1].X < config.FieldWidth/2 || es[1].X >= config.FieldWidth) {
			t.Fatalf("pattern %d: second log x = %v not in right half", c.pattern, es[1].X)
		}
	}
}

func TestRandomWaterUsesAllPatterns(t *testing.T) {
	rng := newRand(7)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		a := entity.NewArena()
		l := NewWater(a, rng, 1.0, RandomWater)
		seen[len(l.Members())] = true
	}
	for _, n := range []int{1, 2, 9} {
		if !seen[n] {
			t.Fatalf("never generated a water lane with %d floats", n)
		}
	}
}

func TestReleaseKeepsPlayer(t *testing.T) {
	a := entity.NewArena()
	l := NewRoad(a, newRand(3), 1.0)
	player := a.Insert(entity.Entity{Kind: entity.Player})
	l.Add(player)
	if !l.Contains(player) {
		t.Fatalf("player not in lane after Add")
	}

	l.Release(a, player)
	if len(l.Members()) != 0 {
		t.Fatalf("lane still has %d members", len(l.Members()))
	}
	if a.Len() != 1 || a.Get(player) == nil {
		t.Fatalf("arena len = %d, player alive = %v", a.Len(), a.Get(player) != nil)
	}
}

func TestRemoveDetaches(t *testing.T) {
	a := entity.NewArena()
	l := NewGrass()
	h := a.Insert(entity.Entity{Kind: entity.Player})
	l.Add(h)
	if !l.Remove(h) || l.Remove(h) {
		t.Fatalf("remove should succeed once")
	}
	if a.Get(h) == nil {
		t.Fatalf("Remove freed the entity")
	}
}
