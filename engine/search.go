package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"chess-minimax/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds every evaluation; ±MaxScore is the open window.
	MaxScore int32 = 32500

	maxDepth = 64
)

// Limits bound a call to Search. A zero MoveTime means no time limit.
type Limits struct {
	Depth    int
	MoveTime time.Duration
}

// ScoredMove is a root move with the value the search gave it.
type ScoredMove struct {
	Move  board.Move
	Score int32
}

// RootResult is the outcome of one root search.
type RootResult struct {
	Depth int
	Value int32
	// Best holds every move reaching Value, in search order.
	Best []board.Move
	// Scores holds every root move in search order.
	Scores []ScoredMove
}

// Searcher runs depth-limited minimax with alpha-beta pruning. Every node
// works on its own copy of the state, so the only mutable data shared across
// a search is the searcher itself.
type Searcher struct {
	gen      board.Generator
	priority *PriorityTable
	rng      *rand.Rand

	// TT caches results by board content. nil disables it.
	TT *TransTable
	// Info receives one "info ..." line per completed iteration. nil is silent.
	Info io.Writer
	// PrintCutStats dumps the statistics to Info after each Search.
	PrintCutStats bool

	stats       CutStatistics
	timeHandler TimeHandler
	abortable   bool
}

// NewSearcher returns a searcher that orders root moves with priority and
// breaks ties with rng. nil arguments get fresh defaults.
func NewSearcher(gen board.Generator, priority *PriorityTable, rng *rand.Rand) *Searcher {
	if priority == nil {
		priority = NewPriorityTable()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Searcher{gen: gen, priority: priority, rng: rng}
}

// Priority returns the table used for root ordering.
func (s *Searcher) Priority() *PriorityTable { return s.priority }

// Stats returns the counters of the last SearchRoot or Search, or those
// accumulated by Minimax calls since the last ResetStats.
func (s *Searcher) Stats() CutStatistics { return s.stats }

func (s *Searcher) ResetStats() { s.stats = CutStatistics{} }

// Minimax returns the value of st for side to move, searched depth plies
// deep inside the window (alpha, beta). Black maximizes, white minimizes.
func (s *Searcher) Minimax(st *board.State, depth int, alpha, beta int32, side board.Color) (int32, error) {
	s.abortable = false
	return s.minimax(st, int8(Clamp(depth, 0, maxDepth)), alpha, beta, side)
}

func (s *Searcher) minimax(st *board.State, depth int8, alpha, beta int32, side board.Color) (int32, error) {
	s.stats.Nodes++

	if s.abortable && s.stats.Nodes&1023 == 0 && s.timeHandler.TimeStatus() {
		return 0, errSearchAborted
	}

	if depth <= 0 {
		s.stats.Leaves++
		return Evaluate(st.Grid), nil
	}
	if _, won := stateWinner(st); won {
		s.stats.Leaves++
		return Evaluate(st.Grid), nil
	}

	var hash uint64
	if s.TT != nil {
		hash = st.Grid.Hash(side)
		if entry, ok := s.TT.probe(hash); ok {
			if usable, score := s.TT.useEntry(entry, depth, alpha, beta); usable {
				s.stats.TTCutoffs++
				return score, nil
			}
		}
	}

	moves := st.Moves[side].Moves()
	// No moves below the root: score the position as it stands.
	if len(moves) == 0 {
		s.stats.Leaves++
		return Evaluate(st.Grid), nil
	}

	origAlpha, origBeta := alpha, beta
	var best int32
	if side == Maximizer {
		best = -MaxScore
		for _, m := range moves {
			child, err := st.Apply(s.gen, m)
			if err != nil {
				return 0, err
			}
			value, err := s.minimax(child, depth-1, alpha, beta, side.Opponent())
			if err != nil {
				return 0, err
			}
			best = Max(best, value)
			alpha = Max(alpha, best)
			if alpha >= beta {
				s.stats.BetaCutoffs++
				break
			}
		}
	} else {
		best = MaxScore
		for _, m := range moves {
			child, err := st.Apply(s.gen, m)
			if err != nil {
				return 0, err
			}
			value, err := s.minimax(child, depth-1, alpha, beta, side.Opponent())
			if err != nil {
				return 0, err
			}
			best = Min(best, value)
			beta = Min(beta, best)
			if beta <= alpha {
				s.stats.BetaCutoffs++
				break
			}
		}
	}

	if s.TT != nil {
		flag := ExactFlag
		if best <= origAlpha {
			flag = AlphaFlag
		} else if best >= origBeta {
			flag = BetaFlag
		}
		s.TT.store(hash, depth, best, flag)
	}
	return best, nil
}

// SearchRoot scores every move of player in priority order, each with a
// fresh window, writes the scores back to the priority table and returns
// them together with the tied best moves.
func (s *Searcher) SearchRoot(st *board.State, depth int, player board.Color) (RootResult, error) {
	s.abortable = false
	s.ResetStats()
	res, err := s.searchRoot(st, int8(Clamp(depth, 1, maxDepth)), player)
	if err != nil {
		return RootResult{}, err
	}
	s.commit(res)
	return res, nil
}

func (s *Searcher) searchRoot(st *board.State, depth int8, player board.Color) (RootResult, error) {
	if winner, won := stateWinner(st); won {
		return RootResult{}, fmt.Errorf("%w: %s has won", ErrGameOver, winner)
	}

	s.priority.Extend(st.Moves[player])
	moves := s.priority.Order(st.Moves[player].Moves())
	if len(moves) == 0 {
		return RootResult{}, fmt.Errorf("%w: %s to move", ErrNoLegalMoves, player)
	}

	res := RootResult{Depth: int(depth), Scores: make([]ScoredMove, 0, len(moves))}
	value := MaxScore
	if player == Maximizer {
		value = -MaxScore
	}

	for _, m := range moves {
		child, err := st.Apply(s.gen, m)
		if err != nil {
			return RootResult{}, err
		}
		score, err := s.minimax(child, depth-1, -MaxScore, MaxScore, player.Opponent())
		if err != nil {
			return RootResult{}, err
		}
		res.Scores = append(res.Scores, ScoredMove{Move: m, Score: score})

		better := score < value
		if player == Maximizer {
			better = score > value
		}
		switch {
		case better:
			value = score
			res.Best = append(res.Best[:0], m)
		case score == value:
			res.Best = append(res.Best, m)
		}
	}
	res.Value = value
	return res, nil
}

func (s *Searcher) commit(res RootResult) {
	for _, sm := range res.Scores {
		s.priority.Set(sm.Move, sm.Score)
	}
}

// pick chooses uniformly among the tied best moves.
func (s *Searcher) pick(res RootResult) board.Move {
	return res.Best[s.rng.Intn(len(res.Best))]
}

// BestMove searches depth plies (the root move included) and returns one of
// the best moves for player with its value.
func (s *Searcher) BestMove(st *board.State, depth int, player board.Color) (board.Move, int32, error) {
	res, err := s.SearchRoot(st, depth, player)
	if err != nil {
		return board.Move{}, 0, err
	}
	return s.pick(res), res.Value, nil
}

// Search deepens from one ply up to lim.Depth and stops early when
// lim.MoveTime passes or ctx is cancelled. The result of the last completed
// iteration is returned; the first iteration always completes.
func (s *Searcher) Search(ctx context.Context, st *board.State, player board.Color, lim Limits) (board.Move, int32, error) {
	depth := Clamp(lim.Depth, 1, maxDepth)
	s.ResetStats()
	s.timeHandler.start(ctx, lim.MoveTime)
	defer func() { s.abortable = false }()

	var last RootResult
	startTime := time.Now()
	for d := 1; d <= depth; d++ {
		s.abortable = d > 1
		res, err := s.searchRoot(st, int8(d), player)
		if errors.Is(err, errSearchAborted) {
			break
		}
		if err != nil {
			return board.Move{}, 0, err
		}
		s.commit(res)
		last = res
		s.info(res, time.Since(startTime))

		if s.timeHandler.TimeStatus() {
			break
		}
	}

	if s.PrintCutStats && s.Info != nil {
		dumpCutStats(s.Info, s.stats)
	}
	return s.pick(last), last.Value, nil
}

func (s *Searcher) info(res RootResult, elapsed time.Duration) {
	if s.Info == nil {
		return
	}
	timeSpent := elapsed.Milliseconds()
	if timeSpent == 0 {
		timeSpent = 1
	}
	nps := s.stats.Nodes * 1000 / uint64(timeSpent)
	fmt.Fprintln(s.Info,
		"info depth", res.Depth,
		"score", res.Value,
		"nodes", s.stats.Nodes,
		"time", timeSpent,
		"nps", nps,
		"best", len(res.Best),
		"move", res.Best[0],
	)
}
