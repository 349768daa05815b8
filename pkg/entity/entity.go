package entity

import "math"

// Kind discriminates what an entity is and how it interacts with the player.
type Kind int

const (
	Vehicle Kind = iota // lethal on touch, road lanes only
	Log                 // rideable, water lanes only
	Turtle              // rideable, water lanes only
	Player
)

func (k Kind) String() string {
	switch k {
	case Vehicle:
		return "vehicle"
	case Log:
		return "log"
	case Turtle:
		return "turtle"
	case Player:
		return "player"
	}
	return "unknown"
}

// IsFloat reports whether the kind carries the player instead of killing it.
func (k Kind) IsFloat() bool {
	return k == Log || k == Turtle
}

// Entity is a horizontally drifting object in one lane.
type Entity struct {
	Kind     Kind
	X        float64 // left edge, wraps modulo the field width
	Y        float64 // only used for input direction math
	Velocity float64 // px/sec, sign is direction
	Width    float64
	Height   float64
}

// Advance moves the entity by dt seconds and wraps X back into [0, fieldWidth).
// Every kind moves under this law; the player simply has zero velocity.
func (e *Entity) Advance(dt, fieldWidth float64) {
	e.X = Wrap(e.X+dt*e.Velocity, fieldWidth)
}

// Move shifts the entity without wrapping. Used for discrete player steps and
// for being carried by a float.
func (e *Entity) Move(dx, dy float64) {
	e.X += dx
	e.Y += dy
}

// Wrap folds x into [0, width).
func Wrap(x, width float64) float64 {
	x = math.Mod(x, width)
	if x < 0 {
		x += width
	}
	if x >= width {
		x -= width
	}
	return x
}

// Ahead reports whether b's left edge lies strictly inside [a, a+wa).
// Exact edge contact (distance 0) is not an overlap.
func Ahead(a, wa, b float64) bool {
	d := b - a
	return d > 0 && d < wa
}

// Overlaps applies the strict two-sided interval test between e and o:
// either left edge strictly inside the other's span.
func (e Entity) Overlaps(o Entity) bool {
	return Ahead(e.X, e.Width, o.X) || Ahead(o.X, o.Width, e.X)
}
