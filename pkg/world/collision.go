package world

import (
	"github.com/golangdaddy/bogger/pkg/entity"
)

// CheckCollision returns the first entity in row, other than player, whose
// span overlaps the player's. Floats are also tested against their position
// shifted one field width left, which catches a float that has wrapped past
// the right edge while the player stands near the left edge.
//
// The overlap test is strict: touching edges do not collide. Only moving
// floats get the wrapped test; vehicles never do.
func (w *World) CheckCollision(row int, player entity.Handle) (entity.Handle, bool, error) {
	l, err := w.Lane(row)
	if err != nil {
		return entity.Handle{}, false, err
	}
	p := w.arena.Get(player)
	if p == nil {
		return entity.Handle{}, false, nil
	}

	for _, h := range l.Members() {
		if h == player {
			continue
		}
		e := w.arena.Get(h)
		if e == nil {
			continue
		}
		if e.Kind.IsFloat() {
			if entity.Ahead(p.X, p.Width, e.X) {
				return h, true, nil
			}
			if e.Velocity != 0 && entity.Ahead(e.X-w.fieldWidth, e.Width, p.X) {
				return h, true, nil
			}
		}
		if p.Overlaps(*e) {
			return h, true, nil
		}
	}
	return entity.Handle{}, false, nil
}
