package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"chess-minimax/board"
	"chess-minimax/engine"
)

const (
	scriptMove      = "Please choose a move below."
	scriptMoveError = "Move must be an integer between 0 and %d. For example, '2'.\n"
)

// options are the settings of one run besides the engine configuration.
type options struct {
	Player   board.Color // side of the random mover or human
	Human    bool
	MaxPlies int
	Quiet    bool
	Info     bool
}

func main() {
	height := flag.Int("height", 8, "board height (1-8)")
	width := flag.Int("width", 8, "board width (1-8)")
	arrangement := flag.String("arrangement", "standard", "starting arrangement: standard or small")
	fen := flag.String("fen", "", "8x8 starting position as FEN (overrides -arrangement)")
	depth := flag.Int("depth", 2, "search depth in plies")
	moveTime := flag.Duration("movetime", 0, "time limit per engine move (0 = none)")
	player := flag.String("player", "white", "color of the opponent: white or black")
	human := flag.Bool("human", false, "read the opponent's moves from stdin instead of playing randomly")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	logPath := flag.String("log", "", "append a record of the game to this file")
	note := flag.String("note", "Played against an opponent using moves chosen by RNG.", "note for the game log")
	noTT := flag.Bool("nott", false, "disable the transposition table")
	maxPlies := flag.Int("maxplies", 400, "stop after this many moves")
	quiet := flag.Bool("quiet", false, "do not print the board")
	info := flag.Bool("info", false, "print search info lines")
	flag.Parse()

	arr, err := selectArrangement(*arrangement, *fen)
	if err != nil {
		log.Fatalf("arrangement: %v", err)
	}
	if *fen != "" {
		*height, *width = 8, 8
	}
	playerColor, err := board.ParseColor(*player)
	if err != nil {
		log.Fatalf("player: %v", err)
	}

	cfg := engine.DefaultConfig()
	cfg.Height = *height
	cfg.Width = *width
	cfg.Arrangement = arr
	cfg.Depth = *depth
	cfg.MoveTime = *moveTime
	cfg.UseTT = !*noTT
	cfg.Seed = *seed

	opts := options{
		Player:   playerColor,
		Human:    *human,
		MaxPlies: *maxPlies,
		Quiet:    *quiet,
		Info:     *info,
	}

	// An interrupt ends the game after the current move; the log is still written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec, err := play(ctx, cfg, opts, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("play: %v", err)
	}
	rec.Note = *note
	if *human && *note == flag.Lookup("note").DefValue {
		rec.Note = "Played against a human opponent."
	}

	fmt.Println(rec.winText())
	fmt.Println(rec.timeText())
	if *logPath != "" {
		if err := appendGameLog(*logPath, rec); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// selectArrangement resolves the -arrangement and -fen flags. nil stands for
// the standard arrangement.
func selectArrangement(name, fen string) (board.Arrangement, error) {
	if fen != "" {
		return board.ArrangementFromFEN(fen)
	}
	switch strings.ToLower(name) {
	case "", "standard":
		return nil, nil
	case "small":
		return board.SmallArrangement(), nil
	}
	return nil, fmt.Errorf("unknown arrangement %q", name)
}

// play runs one game between the engine and an opponent until a king is
// captured, a side runs out of moves, opts.MaxPlies is reached or ctx is
// done. White moves first.
func play(ctx context.Context, cfg engine.Config, opts options, in io.Reader, out io.Writer) (gameRecord, error) {
	game, err := engine.NewGame(cfg, nil)
	if err != nil {
		return gameRecord{}, err
	}
	if opts.Info {
		game.Searcher().Info = out
	}

	ai := opts.Player.Opponent()
	rec := gameRecord{
		When:   time.Now(),
		AI:     ai,
		Depth:  game.Config().Depth,
		Height: game.Config().Height,
		Width:  game.Config().Width,
	}
	fmt.Fprintf(out, "player is: %s, ai is: %s\n", opts.Player, ai)

	// A setup without one of the kings is decided before the first move.
	if winner, won := game.HasWon(); won {
		fmt.Fprintf(out, "%s has no king\n", winner.Opponent())
		rec.Winner, rec.Won = winner, true
		return rec, nil
	}

	scanner := bufio.NewScanner(in)
	side := board.White

	for game.Plies() < opts.MaxPlies && ctx.Err() == nil {
		if !opts.Quiet {
			fmt.Fprint(out, game.PrintableGrid())
		}

		var (
			m     board.Move
			value int32
		)
		if side == ai {
			before := time.Now()
			m, value, err = game.BestMoveContext(ctx, ai)
			if err == nil {
				rec.Times = append(rec.Times, time.Since(before))
			}
		} else if opts.Human {
			m, err = readMove(game, side, scanner, out)
		} else {
			m, err = game.RandomMove(side)
		}
		if errors.Is(err, engine.ErrNoLegalMoves) {
			fmt.Fprintf(out, "%s has no moves left\n", side)
			break
		}
		if err != nil {
			return rec, err
		}

		if err := game.ApplyRealMove(m); err != nil {
			return rec, err
		}
		if side != ai {
			value = game.Evaluate()
		}
		fmt.Fprintf(out, "%s %v has a value of %d\n", side, m, value)
		if side == ai {
			fmt.Fprintf(out, "Took %s\n", rec.Times[len(rec.Times)-1])
		}

		if winner, won := game.HasWon(); won {
			rec.Winner, rec.Won = winner, true
			break
		}
		side = side.Opponent()
	}

	if !opts.Quiet {
		fmt.Fprint(out, game.PrintableGrid())
	}
	rec.Plies = game.Plies()
	return rec, nil
}

// readMove lists the moves of side and reads the chosen index.
func readMove(game *engine.Game, side board.Color, scanner *bufio.Scanner, out io.Writer) (board.Move, error) {
	moves := game.PrioritizedMoves(side)
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s to move", engine.ErrNoLegalMoves, side)
	}
	fmt.Fprintln(out, scriptMove)
	for i, m := range moves {
		fmt.Fprintf(out, "Move %d: %v\n", i, m)
	}
	for scanner.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 0 && n < len(moves) {
			return moves[n], nil
		}
		fmt.Fprintf(out, scriptMoveError, len(moves)-1)
	}
	if err := scanner.Err(); err != nil {
		return board.Move{}, err
	}
	return board.Move{}, io.ErrUnexpectedEOF
}
