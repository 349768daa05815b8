package input

import "github.com/golangdaddy/bogger/pkg/entity"

// Direction is a discrete move command.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "none"
}

// DiagonalSlope is the slope of the two lines through the player that split
// the plane into the four move quadrants.
const DiagonalSlope = 1.0

// DirectionFrom maps a touch point to a move relative to the player's centre.
// Two diagonals through the centre give four quadrants turned 45° from the
// axes: up above both lines, down below both, left and right in between.
func DirectionFrom(x, y float64, player entity.Entity) Direction {
	cx := player.X + player.Width/2
	cy := player.Y + player.Height/2

	// Screen y grows downward, so "below" a line means a larger y.
	belowFalling := y >= cy-DiagonalSlope*(x-cx)
	belowRising := y >= cy+DiagonalSlope*(x-cx)

	switch {
	case belowFalling && belowRising:
		return Down
	case !belowFalling && belowRising:
		return Left
	case belowFalling && !belowRising:
		return Right
	default:
		return Up
	}
}
