// Command bogger-scores prints the high score, the number of games played
// and the most recent runs from a score history file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/golangdaddy/bogger/pkg/config"
	"github.com/golangdaddy/bogger/pkg/score"
)

func main() {
	file := flag.String("file", config.DefaultScore, "score history file")
	last := flag.Int("last", 10, "how many recent runs to list")
	flag.Parse()

	scores, err := score.History{Path: *file}.Load()
	if err != nil {
		color.Red("Failed to read %s: %v", *file, err)
		os.Exit(1)
	}
	report(color.Output, *file, scores, *last)
}

func report(w io.Writer, path string, scores []int, last int) {
	title := color.New(color.FgYellow, color.Bold)
	label := color.New(color.FgCyan)
	value := color.New(color.FgGreen)
	best := color.New(color.FgYellow)

	sum := score.Summarize(scores)
	title.Fprintf(w, "Bogger scores (%s)\n", path)
	label.Fprint(w, "  High score:   ")
	value.Fprintf(w, "%0*d\n", config.ScoreDigits, sum.HighScore)
	label.Fprint(w, "  Games played: ")
	value.Fprintf(w, "%d\n", sum.GamesPlayed)

	if len(scores) == 0 || last <= 0 {
		return
	}
	fmt.Fprintln(w)
	title.Fprintln(w, "Recent runs")
	from := max(0, len(scores)-last)
	for i := len(scores) - 1; i >= from; i-- {
		line := fmt.Sprintf("  #%-4d %0*d", i+1, config.ScoreDigits, scores[i])
		if scores[i] == sum.HighScore && sum.HighScore > 0 {
			best.Fprintln(w, line+"  best")
			continue
		}
		fmt.Fprintln(w, line)
	}
}
