package score

import (
	"fmt"

	"github.com/golangdaddy/bogger/pkg/config"
)

// Board tracks the running score of the current run and the high score
// derived from the history file.
type Board struct {
	history History
	score   float64
	summary Summary
}

// NewBoard creates a board backed by the score file at path. Call Load to
// read the existing history.
func NewBoard(path string) *Board {
	return &Board{history: History{Path: path}}
}

// RowDelta is the award for one row forward (and the penalty for one back).
func RowDelta(difficulty float64) float64 {
	return config.RowAward * difficulty * difficulty
}

// AddRow awards one row of forward progress.
func (b *Board) AddRow(difficulty float64) {
	b.score += RowDelta(difficulty)
}

// RemRow takes back one row. The score is floored at zero.
func (b *Board) RemRow(difficulty float64) {
	b.score = max(b.score-RowDelta(difficulty), 0)
}

// Decay applies the time penalty for dt seconds, floored at zero.
func (b *Board) Decay(dt float64) {
	b.score = max(b.score-config.DecayPerSec*dt, 0)
}

// Reset zeroes the running score.
func (b *Board) Reset() {
	b.score = 0
}

// Score returns the running score.
func (b *Board) Score() float64 {
	return b.score
}

// HighScore returns the best entry in the loaded history.
func (b *Board) HighScore() int {
	return b.summary.HighScore
}

// GamesPlayed returns the number of entries in the loaded history.
func (b *Board) GamesPlayed() int {
	return b.summary.GamesPlayed
}

// Beaten reports whether the running score is above the high score.
func (b *Board) Beaten() bool {
	return int(b.score) > b.summary.HighScore
}

// Load re-reads the history file and refreshes the high score.
func (b *Board) Load() error {
	scores, err := b.history.Load()
	b.summary = Summarize(scores)
	return err
}

// Save appends the running score to the history file.
func (b *Board) Save() error {
	return b.history.Append(int(b.score))
}

// Result describes a finished run.
type Result struct {
	Final       int
	HighScore   int // best of all history including this run
	PriorGames  int // runs recorded before this one
	NewHighMark bool
}

// Finish records the running score, resets it and reloads the history.
func (b *Board) Finish() (Result, error) {
	prior := b.summary
	res := Result{
		Final:       int(b.score),
		PriorGames:  prior.GamesPlayed,
		NewHighMark: int(b.score) > prior.HighScore,
	}
	saveErr := b.Save()
	b.Reset()
	loadErr := b.Load()
	res.HighScore = max(b.summary.HighScore, res.Final)
	if saveErr != nil {
		return res, saveErr
	}
	return res, loadErr
}

// Path returns the history file the board records to.
func (b *Board) Path() string {
	return b.history.Path
}

// Labels returns the HUD lines for the running score and the high score.
func (b *Board) Labels() (current, high string) {
	current = fmt.Sprintf("Score: %0*d", config.ScoreDigits, int(b.score))
	high = fmt.Sprintf("Highscore: %0*d", config.ScoreDigits, b.summary.HighScore)
	return current, high
}
