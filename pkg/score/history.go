package score

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// History is the append-only score file: one non-negative integer per
// completed run, newline separated.
type History struct {
	Path string
}

// Load reads every entry. A missing file is an empty history. Tokens that are
// not non-negative integers are skipped.
func (h History) Load() ([]int, error) {
	file, err := os.Open(h.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open score file: %w", err)
	}
	defer file.Close()

	var scores []int
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil || v < 0 {
			log.Printf("score: skipping bad entry %q in %s", scanner.Text(), h.Path)
			continue
		}
		scores = append(scores, v)
	}
	if err := scanner.Err(); err != nil {
		return scores, fmt.Errorf("error reading score file: %w", err)
	}
	return scores, nil
}

// Append adds one entry at the end of the file, creating it if needed.
// Existing entries are never rewritten.
func (h History) Append(v int) error {
	if v < 0 {
		v = 0
	}
	file, err := os.OpenFile(h.Path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open score file for append: %w", err)
	}
	sep, err := separator(file)
	if err != nil {
		file.Close()
		return err
	}
	if _, err := fmt.Fprintf(file, "%s%d\n", sep, v); err != nil {
		file.Close()
		return fmt.Errorf("failed to append score: %w", err)
	}
	return file.Close()
}

// separator leaves file positioned at its end and returns the newline needed
// before a new entry when the last one was written without one.
func separator(file *os.File) (string, error) {
	end, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return "", fmt.Errorf("failed to seek score file: %w", err)
	}
	if end == 0 {
		return "", nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, end-1); err != nil {
		return "", fmt.Errorf("failed to read score file: %w", err)
	}
	if last[0] == '\n' {
		return "", nil
	}
	return "\n", nil
}

// Summary is derived from a set of history entries.
type Summary struct {
	HighScore   int
	GamesPlayed int
}

// Summarize returns the maximum entry and the number of entries.
func Summarize(scores []int) Summary {
	s := Summary{GamesPlayed: len(scores)}
	for _, v := range scores {
		s.HighScore = max(s.HighScore, v)
	}
	return s
}
