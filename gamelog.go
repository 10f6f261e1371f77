package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"

	"chess-minimax/board"
)

const logRule = "-----------------------------------------------------------------"

// gameRecord is what gets appended to the game log once a game ends.
type gameRecord struct {
	When   time.Time
	Winner board.Color
	Won    bool
	Plies  int
	AI     board.Color
	Depth  int
	Height int
	Width  int
	// Times holds the duration of every engine search.
	Times []time.Duration
	Note  string
}

// timeStats returns the mean and standard deviation of the search times in
// seconds. Fewer than two samples give a zero deviation.
func (r gameRecord) timeStats() (mean, stddev float64) {
	if len(r.Times) == 0 {
		return 0, 0
	}
	secs := make([]float64, len(r.Times))
	for i, d := range r.Times {
		secs[i] = d.Seconds()
	}
	if len(secs) == 1 {
		return secs[0], 0
	}
	return stat.Mean(secs, nil), stat.StdDev(secs, nil)
}

func (r gameRecord) winText() string {
	if !r.Won {
		return fmt.Sprintf("No winner after %d moves", r.Plies)
	}
	return fmt.Sprintf("The winner is: %s in %d moves", r.Winner, r.Plies)
}

func (r gameRecord) timeText() string {
	mean, stddev := r.timeStats()
	return fmt.Sprintf("The ai(%s) took an average of %.2fs (sd %.2fs) per turn to make a move with a depth of %d on a %dx%d board.",
		r.AI, mean, stddev, r.Depth, r.Height, r.Width)
}

func writeGameRecord(w io.Writer, r gameRecord) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n%s\nNote: %s\n%s",
		logRule,
		r.When.Format("2006-01-02 15:04:05.000000"),
		r.winText(),
		r.timeText(),
		r.Note,
		logRule,
	)
	return err
}

// appendGameLog appends r to the file at path, creating it if needed.
func appendGameLog(path string, r gameRecord) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open game log: %w", err)
	}
	if err := writeGameRecord(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write game log: %w", err)
	}
	return f.Close()
}
