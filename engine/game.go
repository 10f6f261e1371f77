package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"chess-minimax/board"
	"chess-minimax/movegen"
)

// Config holds the settings of a game.
type Config struct {
	Height int
	Width  int
	// Arrangement of the pieces; nil means the standard starting position.
	Arrangement board.Arrangement

	// Depth is the search depth in plies, the engine's own move included.
	Depth int
	// MoveTime caps the search per move; zero searches to Depth regardless.
	MoveTime time.Duration

	UseTT    bool
	TTSizeMB int

	// Seed feeds the random source used for tie-breaks and random moves.
	Seed int64
}

// DefaultConfig is a standard 8x8 game searched two plies deep.
func DefaultConfig() Config {
	return Config{
		Height:   8,
		Width:    8,
		Depth:    2,
		UseTT:    true,
		TTSizeMB: 16,
		Seed:     1,
	}
}

// Game owns the live board state and the priority table. The searcher only
// ever sees copies of the state; the live state changes only through
// ApplyRealMove.
type Game struct {
	cfg      Config
	gen      board.Generator
	state    *board.State
	priority *PriorityTable
	searcher *Searcher
	rng      *rand.Rand
	plies    int
}

// NewGame sets up the board described by cfg. gen may be nil to use the
// default move generator.
func NewGame(cfg Config, gen board.Generator) (*Game, error) {
	if gen == nil {
		gen = movegen.New()
	}
	state, err := board.NewState(cfg.Height, cfg.Width, cfg.Arrangement, gen)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	priority := NewPriorityTable()
	priority.Extend(state.Moves[board.Black])
	priority.Extend(state.Moves[board.White])

	rng := rand.New(rand.NewSource(cfg.Seed))
	searcher := NewSearcher(gen, priority, rng)
	if cfg.UseTT {
		searcher.TT = NewTransTable(cfg.TTSizeMB)
	}

	return &Game{
		cfg:      cfg,
		gen:      gen,
		state:    state,
		priority: priority,
		searcher: searcher,
		rng:      rng,
	}, nil
}

func (g *Game) Config() Config { return g.cfg }

// Searcher exposes the searcher, e.g. to attach an Info writer.
func (g *Game) Searcher() *Searcher { return g.searcher }

// Priority returns the game's priority table.
func (g *Game) Priority() *PriorityTable { return g.priority }

// Plies returns the number of real moves played so far.
func (g *Game) Plies() int { return g.plies }

// State returns a copy of the live state.
func (g *Game) State() *board.State { return g.state.Clone() }

// PrintableGrid returns a snapshot of the occupancy grid for rendering.
func (g *Game) PrintableGrid() board.Grid { return g.state.Grid.Clone() }

// PrioritizedMoves returns every move of c, highest priority first.
func (g *Game) PrioritizedMoves(c board.Color) []board.Move {
	return g.priority.Order(g.state.Moves[c].Moves())
}

// Evaluate returns the material balance of the live grid.
func (g *Game) Evaluate() int32 { return Evaluate(g.state.Grid) }

// HasWon reports whether a king has been captured, and by whom.
func (g *Game) HasWon() (board.Color, bool) { return stateWinner(g.state) }

// InCheck is not supported: there is no notion of check, and moves are
// never filtered for king safety.
func (g *Game) InCheck(c board.Color) (bool, error) {
	return false, fmt.Errorf("%w: check detection for %s", ErrUnimplementedRule, c)
}

// ApplyRealMove plays m on the live state and adds any newly possible moves
// to the priority table with score 0.
func (g *Game) ApplyRealMove(m board.Move) error {
	if winner, won := g.HasWon(); won {
		return fmt.Errorf("%w: %s has won", ErrGameOver, winner)
	}
	mover, ok := g.state.Grid.At(m.From)
	if !ok {
		return fmt.Errorf("%w: %v: %w", ErrIllegalMove, m, board.ErrEmptyOrigin)
	}
	if !g.state.Moves[mover.Color].Contains(m) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, m, mover)
	}

	next, err := g.state.Apply(g.gen, m)
	if err != nil {
		return err
	}
	g.state = next
	g.plies++

	g.priority.Extend(next.Moves[board.Black])
	g.priority.Extend(next.Moves[board.White])
	return nil
}

// BestMove searches for player with the configured limits.
func (g *Game) BestMove(player board.Color) (board.Move, int32, error) {
	return g.BestMoveContext(context.Background(), player)
}

// BestMoveContext is BestMove with cancellation.
func (g *Game) BestMoveContext(ctx context.Context, player board.Color) (board.Move, int32, error) {
	return g.searcher.Search(ctx, g.state, player, Limits{Depth: g.cfg.Depth, MoveTime: g.cfg.MoveTime})
}

// RandomMove picks any move of c uniformly at random.
func (g *Game) RandomMove(c board.Color) (board.Move, error) {
	if winner, won := g.HasWon(); won {
		return board.Move{}, fmt.Errorf("%w: %s has won", ErrGameOver, winner)
	}
	moves := g.state.Moves[c].Moves()
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s to move", ErrNoLegalMoves, c)
	}
	return moves[g.rng.Intn(len(moves))], nil
}
