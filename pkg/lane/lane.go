package lane

import (
	"github.com/golangdaddy/bogger/pkg/entity"
)

// Kind is the terrain of a lane.
type Kind int

const (
	Grass Kind = iota // safe, never holds hazards
	Road              // holds vehicles
	Water             // holds logs and turtles; open water is fatal
)

func (k Kind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Road:
		return "road"
	case Water:
		return "water"
	}
	return "unknown"
}

// Lane is one horizontal strip of the field. It owns its hazard entities
// exclusively; the player handle is only borrowed while the player stands here.
type Lane struct {
	Kind    Kind
	members []entity.Handle
}

// New creates an empty lane of the given kind.
func New(kind Kind) *Lane {
	return &Lane{
		Kind:    kind,
		members: make([]entity.Handle, 0, 4),
	}
}

// Add appends h to the lane.
func (l *Lane) Add(h entity.Handle) {
	l.members = append(l.members, h)
}

// Remove drops h from the lane without freeing it. It reports whether h was present.
func (l *Lane) Remove(h entity.Handle) bool {
	for i, m := range l.members {
		if m == h {
			l.members = append(l.members[:i], l.members[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether h is in the lane.
func (l *Lane) Contains(h entity.Handle) bool {
	for _, m := range l.members {
		if m == h {
			return true
		}
	}
	return false
}

// Members returns the lane's handles in insertion order. The slice must not be modified.
func (l *Lane) Members() []entity.Handle {
	return l.members
}

// Advance runs the kinematics step for every member.
func (l *Lane) Advance(a *entity.Arena, dt, fieldWidth float64) {
	for _, h := range l.members {
		if e := a.Get(h); e != nil {
			e.Advance(dt, fieldWidth)
		}
	}
}

// Release frees every owned entity from the arena. The keep handle (the
// player) is detached but left alive.
func (l *Lane) Release(a *entity.Arena, keep entity.Handle) {
	for _, h := range l.members {
		if h == keep {
			continue
		}
		a.Remove(h)
	}
	l.members = l.members[:0]
}
