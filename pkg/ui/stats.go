package ui

import (
	"fmt"

	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/score"
)

// StatsLines formats the history summary and the most recent runs, newest
// first, for the stats screen.
func StatsLines(scores []int, recent int) []string {
	sum := score.Summarize(scores)
	lines := []string{
		fmt.Sprintf("High score:   %0*d", config.ScoreDigits, sum.HighScore),
		fmt.Sprintf("Games played: %d", sum.GamesPlayed),
	}
	if len(scores) == 0 {
		return append(lines, "", "No runs yet")
	}
	lines = append(lines, "", "Recent runs")
	for i := len(scores) - 1; i >= 0 && i >= len(scores)-recent; i-- {
		lines = append(lines, fmt.Sprintf("%0*d", config.ScoreDigits, scores[i]))
	}
	return lines
}
