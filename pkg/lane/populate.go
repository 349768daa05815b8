package lane

import (
	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/entity"
)

// Source is the randomness used for lane layouts. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// WaterPattern selects one of the water layouts. RandomWater picks one of the
// other four uniformly.
type WaterPattern int

const (
	RandomWater  WaterPattern = iota
	NarrowLogs                // two narrow logs, one per half
	WideLog                   // one wide log in the left half
	MediumLogs                // two medium logs, one per half
	TurtleGroups              // three clusters of three turtles
)

var turtleOffsets = [...]float64{16, 32, 48, 128, 144, 160, 240, 256, 272}

// NewGrass creates an empty safe lane.
func NewGrass() *Lane {
	return New(Grass)
}

// NewRoad creates a road lane with one vehicle per speed tier, each at a
// random horizontal start.
func NewRoad(a *entity.Arena, rng Source, difficulty float64) *Lane {
	l := New(Road)
	for _, speed := range [...]float64{config.VehicleSpeedSlow, config.VehicleSpeedMedium, config.VehicleSpeedFast} {
		l.Add(a.Insert(entity.Entity{
			Kind:     entity.Vehicle,
			X:        float64(rng.IntN(config.FieldWidth)),
			Velocity: speed * difficulty,
			Width:    config.CarWidth,
			Height:   config.TileHeight,
		}))
	}
	return l
}

// NewWater creates a water lane with the float layout chosen by pattern.
func NewWater(a *entity.Arena, rng Source, difficulty float64, pattern WaterPattern) *Lane {
	if pattern == RandomWater {
		pattern = WaterPattern(rng.IntN(4) + 1)
	}
	jitter := float64(rng.IntN(config.TurtleJitterSpan))
	speed := float64(rng.IntN(config.LogSpeedSpan) + config.LogSpeedMin)
	if rng.IntN(2) == 1 {
		speed = -speed
	}

	l := New(Water)
	half := config.FieldWidth / 2
	addLog := func(x, width float64) {
		l.Add(a.Insert(entity.Entity{
			Kind:     entity.Log,
			X:        x,
			Velocity: speed * difficulty,
			Width:    width,
			Height:   config.FloatHeight,
		}))
	}

	switch pattern {
	case NarrowLogs:
		addLog(float64(rng.IntN(half)), config.LogWidth1)
		addLog(float64(rng.IntN(half)+half), config.LogWidth1)
	case WideLog:
		addLog(float64(rng.IntN(half)), config.LogWidth2)
	case MediumLogs:
		addLog(float64(rng.IntN(half)), config.LogWidth3)
		addLog(float64(rng.IntN(half)+half), config.LogWidth3)
	case TurtleGroups:
		for _, off := range turtleOffsets {
			l.Add(a.Insert(entity.Entity{
				Kind:     entity.Turtle,
				X:        off + jitter,
				Velocity: config.TurtleSpeed * difficulty,
				Width:    config.TurtleWidth,
				Height:   config.FloatHeight,
			}))
		}
	}
	return l
}
