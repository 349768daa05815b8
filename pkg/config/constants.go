package config

// Play field dimensions (in field pixels). The display is a fixed-resolution
// touchscreen, so everything is laid out on this grid.
const (
	FieldWidth  = 320
	FieldHeight = 240
	TileWidth   = 16
	TileHeight  = 16
)

// Entity dimensions.
const (
	CarWidth    = 16
	LogWidth1   = 48
	LogWidth2   = 96
	LogWidth3   = 64
	TurtleWidth = TileWidth
	FloatHeight = 14.0
	PlayerWidth = TileWidth
)

// Base velocities (px/sec) before the difficulty multiplier.
const (
	VehicleSpeedSlow   = 2.0
	VehicleSpeedMedium = 20.0
	VehicleSpeedFast   = 240.0
	TurtleSpeed        = 40.0
	LogSpeedMin        = 30 // inclusive
	LogSpeedSpan       = 120
	TurtleJitterSpan   = 16
)

// Lane generation.
const (
	Lookahead      = 12 // lanes that must exist ahead of the player
	RunMin         = 2  // hazard lanes per run, inclusive
	RunMax         = 5
	ResetGrassRows = 5
	TrailRows      = 16 // lanes kept behind the player before trimming
)

// Visible window. Update and Draw walk WindowRows lanes starting
// WindowBelow rows under the player.
const (
	WindowRows  = 12
	WindowBelow = 2
)

// Player placement.
const (
	SpawnRow     = 2
	StartZoneRow = 3 // score is held at zero at or below this row
	SpawnX       = FieldWidth / 2
	SpawnY       = FieldHeight - 3*TileHeight
)

// Scoring.
const (
	RowAward     = 1000.0 // multiplied by difficulty squared
	DecayPerSec  = 200.0
	ScoreDigits  = 7
	DefaultScore = "Scores.dat"
)

// Return button, shown on every screen except the main menu.
const (
	ReturnX = 3
	ReturnY = 3
	ReturnW = 80
	ReturnH = 22
)
