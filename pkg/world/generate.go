package world

import (
	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/lane"
)

// Generate appends hazard runs until the world holds at least target rows.
// Each run is RunMin..RunMax lanes of one kind (road or water, even odds)
// closed by exactly one grass lane, so the player always reaches safety.
func (w *World) Generate(target int, difficulty float64) int {
	added := 0
	for w.Len() < target {
		road := w.rng.IntN(2) == 1
		n := w.rng.IntN(config.RunMax-config.RunMin+1) + config.RunMin
		for i := 0; i < n; i++ {
			if road {
				w.AddRow(lane.NewRoad(w.arena, w.rng, difficulty))
			} else {
				w.AddRow(lane.NewWater(w.arena, w.rng, difficulty, lane.RandomWater))
			}
		}
		w.AddRow(lane.NewGrass())
		added += n + 1
	}
	return added
}
